package chartview

import (
	"strconv"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

// DataPoint is a single labeled value in a chart. The ID is stable for the
// lifetime of the point and doubles as the per-bar animation-delay key for
// renderers that stagger bar transitions.
type DataPoint struct {
	ID    uuid.UUID
	Label string
	Value float64
}

// Labeled pairs a caller-supplied label with a value, for datasets where the
// labels are meaningful (e.g. weekday names) rather than positional.
type Labeled struct {
	Label string
	Value float64
}

// Dataset is an ordered collection of points driving one chart instance.
// Order is significant: it is both the display order and the index space for
// pointer resolution. A zero-point Dataset is valid; index-resolving
// operations on it report no value instead of computing.
type Dataset struct {
	points      []DataPoint
	labelsGiven bool
}

// NewDataset builds a dataset from bare values. Labels default to the
// positional index, so labelsGiven is false and the floating label stays
// suppressed during interaction.
func NewDataset(values []float64) Dataset {
	points := make([]DataPoint, len(values))
	for i, v := range values {
		points[i] = DataPoint{
			ID:    uuid.New(),
			Label: strconv.Itoa(i),
			Value: v,
		}
	}
	return Dataset{points: points}
}

// NewLabeledDataset builds a dataset from caller-labeled values. Every label
// is treated as explicitly given, which permits the floating value label
// during interaction.
func NewLabeledDataset(pairs []Labeled) Dataset {
	points := make([]DataPoint, len(pairs))
	for i, p := range pairs {
		points[i] = DataPoint{
			ID:    uuid.New(),
			Label: p.Label,
			Value: p.Value,
		}
	}
	return Dataset{points: points, labelsGiven: true}
}

// Len returns the number of points.
func (d Dataset) Len() int { return len(d.points) }

// Point returns the point at index i. The index must be in range; callers go
// through ResolvePointer, which clamps.
func (d Dataset) Point(i int) DataPoint { return d.points[i] }

// Points returns a copy of the point sequence in display order.
func (d Dataset) Points() []DataPoint {
	out := make([]DataPoint, len(d.points))
	copy(out, d.points)
	return out
}

// LabelsGiven reports whether every label was explicitly supplied by the
// caller. It gates the floating label overlay.
func (d Dataset) LabelsGiven() bool { return d.labelsGiven }
