package chartview

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Overlay layout
// ---------------------------------------------------------------------------

// OverlayLayout holds the floating-label geometry. All values are in the same
// unit as the viewport width passed to ResolvePointer (pixels or cells).
type OverlayLayout struct {
	// Width is the overlay's fixed width.
	Width float64
	// EdgeMargin is the minimum gap kept between the overlay and the left
	// viewport edge.
	EdgeMargin float64
	// AnchorOffset is how far left of the pointer the overlay's left edge is
	// anchored before clamping, nominally half the overlay width.
	AnchorOffset float64
}

// DefaultOverlayLayout returns the nominal 110-wide overlay anchored 50 left
// of the pointer with a 10 edge margin.
func DefaultOverlayLayout() OverlayLayout {
	return OverlayLayout{Width: 110, EdgeMargin: 10, AnchorOffset: 50}
}

func (l OverlayLayout) validate() error {
	if l.Width <= 0 {
		return fmt.Errorf("overlay width %v must be positive", l.Width)
	}
	if l.EdgeMargin < 0 {
		return fmt.Errorf("overlay edge margin %v must not be negative", l.EdgeMargin)
	}
	if l.AnchorOffset < 0 {
		return fmt.Errorf("overlay anchor offset %v must not be negative", l.AnchorOffset)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Pointer resolution
// ---------------------------------------------------------------------------

// Resolution is the outcome of mapping a pointer position onto a dataset:
// the selected bar, and where the floating label and its arrow belong.
type Resolution struct {
	Index int
	Point DataPoint
	// LabelOffset is the clamped X of the overlay's left edge, always within
	// [EdgeMargin, width-Width].
	LabelOffset float64
	// ArrowOffset shifts the overlay's arrow back toward the true pointer
	// position: negative when the label was clamped at the left edge,
	// positive at the right, zero when unclamped.
	ArrowOffset float64
}

// ResolvePointer maps a pointer fraction of the viewport width onto a
// discrete bar index and overlay offsets. It reports ok=false when there is
// nothing to resolve: an empty dataset, or an inactive pointer (fraction
// below zero). Fractions at or beyond 1 are permitted and clamp to the last
// bar, since pointer hardware can report edge-exceeding positions.
//
// Pure function: identical inputs always yield identical results.
func ResolvePointer(fraction, width float64, d Dataset, layout OverlayLayout) (Resolution, bool) {
	count := d.Len()
	if count == 0 || fraction < 0 {
		return Resolution{}, false
	}

	// floor(fraction*width / (width/count)) reduces to floor(fraction*count);
	// the clamp absorbs any rounding at the final bucket edge.
	index := int(math.Floor(fraction * float64(count)))
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}

	raw := fraction*width - layout.AnchorOffset
	lower := layout.EdgeMargin
	upper := width - layout.Width

	label := raw
	arrow := 0.0
	switch {
	case raw < lower:
		label = lower
		arrow = raw - lower
	case raw > upper:
		label = upper
		arrow = raw - upper
	}

	return Resolution{
		Index:       index,
		Point:       d.Point(index),
		LabelOffset: label,
		ArrowOffset: arrow,
	}, true
}
