package chartview

// ---------------------------------------------------------------------------
// Interaction state machine
// ---------------------------------------------------------------------------

// inactiveFraction marks "no pointer contact".
const inactiveFraction = -1

// ValueChanged reports that the resolved value moved to a different bar while
// an interaction was in progress. Consumers typically use it to trigger
// feedback (the terminal-bell analog of a haptic tick).
type ValueChanged struct {
	Old float64
	New float64
}

// Snapshot is the read-only view of an interaction the rendering layer
// consumes each frame.
type Snapshot struct {
	Active            bool
	Fraction          float64
	ResolvedValue     float64
	ShowFloatingLabel bool
}

// InteractionState tracks a single ongoing pointer contact over a chart. It
// is strictly linear: inactive until the first pointer move, active across
// subsequent moves, inactive again on pointer end. All methods must be called
// from the same goroutine that processes input events; the type does no
// locking by design.
type InteractionState struct {
	dataset Dataset
	layout  OverlayLayout
	width   float64

	// allowOverlay is the caller's size-class verdict: whether this viewport
	// may show an inline floating label at all.
	allowOverlay bool

	fraction      float64
	active        bool
	resolvedValue float64
	showLabel     bool

	onValueChanged func(ValueChanged)
}

// NewInteractionState builds the machine for one chart instance. width is the
// viewport width in the same unit as the overlay layout; allowOverlay is
// whether the viewport's size class permits an inline overlay.
func NewInteractionState(d Dataset, width float64, allowOverlay bool, layout OverlayLayout) *InteractionState {
	return &InteractionState{
		dataset:      d,
		layout:       layout,
		width:        width,
		allowOverlay: allowOverlay,
		fraction:     inactiveFraction,
	}
}

// OnValueChanged registers the single value-changed listener. A nil fn
// removes it.
func (s *InteractionState) OnValueChanged(fn func(ValueChanged)) {
	s.onValueChanged = fn
}

// SetWidth updates the viewport width, e.g. after a window resize.
func (s *InteractionState) SetWidth(width float64) { s.width = width }

// SetOverlay swaps the overlay geometry, e.g. when a resize shrinks the
// effective layout.
func (s *InteractionState) SetOverlay(layout OverlayLayout) { s.layout = layout }

// SetDataset swaps the dataset backing the interaction. Any in-flight
// interaction keeps running against the new data on the next pointer move.
func (s *InteractionState) SetDataset(d Dataset) { s.dataset = d }

// OnPointerMove feeds one pointer position, as a fraction of viewport width.
// The first move of a drag activates the interaction; every move re-resolves
// the value. Moves over an empty dataset are ignored.
func (s *InteractionState) OnPointerMove(fraction float64) {
	res, ok := ResolvePointer(fraction, s.width, s.dataset, s.layout)
	if !ok {
		return
	}

	wasActive := s.active
	prev := s.resolvedValue

	s.fraction = fraction
	s.active = true
	s.resolvedValue = res.Point.Value
	s.showLabel = s.allowOverlay && s.dataset.LabelsGiven()

	if wasActive && s.resolvedValue != prev && s.onValueChanged != nil {
		s.onValueChanged(ValueChanged{Old: prev, New: s.resolvedValue})
	}
}

// OnPointerEnd ends the interaction. The resolved value is retained; the
// headline reverts to the title because Active is false, not because the
// value resets.
func (s *InteractionState) OnPointerEnd() {
	s.fraction = inactiveFraction
	s.active = false
	s.showLabel = false
}

// Snapshot returns the current observable state.
func (s *InteractionState) Snapshot() Snapshot {
	return Snapshot{
		Active:            s.active,
		Fraction:          s.fraction,
		ResolvedValue:     s.resolvedValue,
		ShowFloatingLabel: s.showLabel,
	}
}

// Resolve re-runs pointer resolution at the current fraction, for renderers
// that need the overlay offsets alongside the snapshot. ok is false while
// inactive or when the dataset is empty.
func (s *InteractionState) Resolve() (Resolution, bool) {
	return ResolvePointer(s.fraction, s.width, s.dataset, s.layout)
}
