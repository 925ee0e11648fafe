package chartview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Bubble Tea widget
// ---------------------------------------------------------------------------

// ValueChangedMsg surfaces a value-changed event to the embedding program,
// which typically answers with feedback (the demo rings the terminal bell).
type ValueChangedMsg ValueChanged

// Model is the interactive bar chart widget. Drag with the left mouse button
// across the bars to inspect values; release to end the interaction.
type Model struct {
	opts    ChartOptions
	dataset Dataset
	scheme  Scheme
	state   *InteractionState
	keys    keyMap

	width  int
	height int

	// chart geometry, derived from the viewport and size class
	chartWidth  int
	chartHeight int

	pending *[]ValueChanged
}

// New builds the widget. opts is validated and defaulted via NewChartOptions.
func New(dataset Dataset, opts ChartOptions, scheme Scheme) (Model, error) {
	opts, err := NewChartOptions(opts)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		opts:        opts,
		dataset:     dataset,
		scheme:      scheme,
		keys:        newKeyMap(),
		chartWidth:  minChartWidth,
		chartHeight: 8,
		pending:     &[]ValueChanged{},
	}
	m.state = NewInteractionState(dataset, float64(m.chartWidth), opts.SizeClass.ShowsFloatingLabel(), m.effectiveOverlay())
	pending := m.pending
	m.state.OnValueChanged(func(e ValueChanged) {
		*pending = append(*pending, e)
	})
	return m, nil
}

const minChartWidth = 10

// Snapshot exposes the interaction state for embedding programs.
func (m Model) Snapshot() Snapshot { return m.state.Snapshot() }

// Scheme returns the active color scheme.
func (m Model) Scheme() Scheme { return m.scheme }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleScheme):
			m.scheme = m.scheme.Toggle()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) resize() {
	avail := m.width - 2
	switch {
	case m.opts.SizeClass.AllowsFullWidth():
		m.chartWidth = avail
	case m.opts.SizeClass == SizeMedium:
		m.chartWidth = min(avail, 48)
	default:
		m.chartWidth = min(avail, 24)
	}
	if m.chartWidth < minChartWidth {
		m.chartWidth = minChartWidth
	}
	m.chartHeight = m.height - 7
	if m.chartHeight < 4 {
		m.chartHeight = 4
	}
	if m.chartHeight > 12 {
		m.chartHeight = 12
	}
	m.state.SetWidth(float64(m.chartWidth))
	m.state.SetOverlay(m.effectiveOverlay())
}

// effectiveOverlay shrinks the configured overlay geometry to fit the chart's
// cell width. The configured layout is used verbatim when it fits.
func (m Model) effectiveOverlay() OverlayLayout {
	l := m.opts.Overlay
	if l.Width+2*l.EdgeMargin <= float64(m.chartWidth) {
		return l
	}
	w := float64(m.chartWidth) / 3
	if w < 8 {
		w = 8
	}
	return OverlayLayout{Width: w, EdgeMargin: 1, AnchorOffset: w / 2}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		fraction := float64(msg.X) / float64(m.chartWidth)
		if fraction < 0 {
			fraction = 0
		}
		m.state.OnPointerMove(fraction)
		return m, m.drainEvents()
	case tea.MouseActionRelease:
		m.state.OnPointerEnd()
	}
	return m, nil
}

// drainEvents converts queued value-changed events into commands.
func (m Model) drainEvents() tea.Cmd {
	if len(*m.pending) == 0 {
		return nil
	}
	events := *m.pending
	*m.pending = nil
	cmds := make([]tea.Cmd, len(events))
	for i, e := range events {
		cmds[i] = func() tea.Msg { return ValueChangedMsg(e) }
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	theme := ResolveTheme(m.scheme, m.opts.Style)
	st := newStyles(theme)
	snap := m.state.Snapshot()

	headline := m.opts.Title
	headStyle := st.headline
	if snap.Active && m.opts.SizeClass.ShowsInlineValue() {
		headline = formatValue(m.opts.ValueFormat, snap.ResolvedValue)
		headStyle = st.value
	}

	norm := Normalize(m.dataset)
	highlight := -1
	var res Resolution
	var resolved bool
	if snap.Active {
		if res, resolved = m.state.Resolve(); resolved {
			highlight = res.Index
		}
	}

	grad := barGradient(theme, m.dataset.Len())
	bars := renderBars(norm, m.chartWidth, m.chartHeight, highlight, grad, theme.Accent)
	if bars == "" {
		bars = st.legend.Render("(no data)")
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(truncate(headline, m.chartWidth)))
	b.WriteString("\n")
	// Two rows reserved for the floating overlay so the bars never jump.
	b.WriteString("\n\n")
	b.WriteString(bars)
	b.WriteString("\n")
	if m.opts.DropShadow {
		b.WriteString(st.shadow.Render(strings.Repeat("▔", m.chartWidth)))
	} else {
		b.WriteString(strings.Repeat(" ", m.chartWidth))
	}
	b.WriteString("\n")
	if m.opts.Legend != "" && m.opts.SizeClass.ShowsLegend() && !snap.Active {
		b.WriteString(st.legend.Render(truncate(m.opts.Legend, m.chartWidth)))
	}
	b.WriteString("\n")
	b.WriteString(st.help.Render(helpLine(m.keys)))

	view := b.String()
	if snap.ShowFloatingLabel && resolved {
		layout := m.effectiveOverlay()
		box, arrow := renderFloatingLabel(res.Point, m.opts.ValueFormat, layout, st)
		view = compositeAt(view, box, int(res.LabelOffset), 1, m.chartWidth)
		arrowX := int(res.LabelOffset + layout.AnchorOffset + res.ArrowOffset)
		view = compositeAt(view, arrow, arrowX, 2, m.chartWidth)
	}
	return view
}

func helpLine(k keyMap) string {
	parts := make([]string, 0, 2)
	for _, b := range k.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}
