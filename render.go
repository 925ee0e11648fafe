package chartview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Block elements for sub-character vertical resolution (1/8 to 8/8).
var blockChars = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

type styleSet struct {
	headline lipgloss.Style
	value    lipgloss.Style
	legend   lipgloss.Style
	help     lipgloss.Style
	label    lipgloss.Style
	arrow    lipgloss.Style
	shadow   lipgloss.Style
}

func newStyles(t Theme) styleSet {
	return styleSet{
		headline: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		value:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		legend:   lipgloss.NewStyle().Foreground(t.LegendText),
		help:     lipgloss.NewStyle().Foreground(t.LegendText).Faint(true),
		label:    lipgloss.NewStyle().Foreground(t.Accent).Background(t.DropShadow).Bold(true),
		arrow:    lipgloss.NewStyle().Foreground(t.Accent),
		shadow:   lipgloss.NewStyle().Foreground(t.DropShadow),
	}
}

// barGradient interpolates one color per bar between the theme's gradient
// endpoints. A single bar gets the start color.
func barGradient(t Theme, n int) []lipgloss.Color {
	out := make([]lipgloss.Color, n)
	start, err := colorful.Hex(string(t.GradientStart))
	if err != nil {
		for i := range out {
			out[i] = t.GradientStart
		}
		return out
	}
	end, err := colorful.Hex(string(t.GradientEnd))
	if err != nil {
		for i := range out {
			out[i] = t.GradientStart
		}
		return out
	}
	for i := range out {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		out[i] = lipgloss.Color(start.BlendLuv(end, frac).Clamped().Hex())
	}
	return out
}

// ---------------------------------------------------------------------------
// Bar rendering
// ---------------------------------------------------------------------------

// renderBars draws the bar row as chartHeight lines of block runes. Each bar
// occupies bucketWidth cells with a one-cell gap when room allows; highlight
// selects the bar drawn in the accent color (-1 for none).
func renderBars(norm []float64, chartWidth, chartHeight, highlight int, grad []lipgloss.Color, accent lipgloss.Color) string {
	count := len(norm)
	if count == 0 || chartWidth <= 0 || chartHeight <= 0 {
		return ""
	}
	bucketWidth := chartWidth / count
	if bucketWidth < 1 {
		bucketWidth = 1
	}
	barWidth := bucketWidth
	if bucketWidth > 1 {
		barWidth = bucketWidth - 1
	}

	// Total eighth-levels per bar.
	levels := make([]int, count)
	for i, f := range norm {
		levels[i] = int(f*float64(chartHeight*8) + 0.5)
	}

	var b strings.Builder
	for row := chartHeight - 1; row >= 0; row-- {
		for i := 0; i < count; i++ {
			var r rune
			switch {
			case levels[i] >= (row+1)*8:
				r = blockChars[8]
			case levels[i] > row*8:
				r = blockChars[levels[i]-row*8]
			default:
				r = blockChars[0]
			}
			color := grad[i]
			if i == highlight {
				color = accent
			}
			cell := strings.Repeat(string(r), barWidth)
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(cell))
			if barWidth < bucketWidth {
				b.WriteString(" ")
			}
		}
		if row > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderFloatingLabel draws the two-line floating overlay: the value box and
// the arrow line beneath it pointing back at the pointer column.
func renderFloatingLabel(p DataPoint, format string, layout OverlayLayout, st styleSet) (box, arrow string) {
	w := int(layout.Width)
	text := fmt.Sprintf("%s "+format, p.Label, p.Value)
	text = truncate(text, w-2)
	box = st.label.Render(padRight(" "+text, w))
	arrow = st.arrow.Render("▼")
	return box, arrow
}

// formatValue renders a resolved value with the chart's format verb.
func formatValue(format string, v float64) string {
	if format == "" {
		format = "%.1f"
	}
	return fmt.Sprintf(format, v)
}
