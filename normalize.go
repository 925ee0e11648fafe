package chartview

// Normalize computes each point's height fraction relative to the dataset
// maximum. A zero maximum (empty or all-zero dataset) is treated as 1 so an
// all-zero dataset yields zero-height bars rather than NaN. Output order
// matches input order and the result has one entry per point.
func Normalize(d Dataset) []float64 {
	maxV := 0.0
	for _, p := range d.points {
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if maxV == 0 {
		maxV = 1
	}
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.Value / maxV
	}
	return out
}
