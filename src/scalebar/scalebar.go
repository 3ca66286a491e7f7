// Package scalebar computes lengths and positions for the L-shaped scale
// bars drawn next to electrophysiology traces instead of conventional axis
// ticks. It is pure geometry: the rendering surface is abstracted behind
// TextMeasurer so the layout can be exercised without a rasterizer.
package scalebar

// Permitted bar lengths per quantity kind. A bar is always snapped to one of
// these "round" values so the label reads well (e.g. "20 ms", not "17.3 ms").
var (
	// TimeLengths are the valid time bar lengths, in ms.
	TimeLengths = []float64{0.1, 0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}
	// VoltageLengths are the valid voltage bar lengths, in mV.
	VoltageLengths = []float64{0.1, 0.5, 1, 2, 5, 10, 20, 50, 100}
	// CurrentLengths are the valid current bar lengths, in nA.
	CurrentLengths = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50}
)

// DefaultBarFraction is the target bar length as a fraction of the visible
// axis span.
const DefaultBarFraction = 0.15

// Range is the visible [Min, Max] bounds of one plotted dimension, in data
// units. Max >= Min.
type Range struct {
	Min float64
	Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Degenerate reports whether the range has no usable width.
func (r Range) Degenerate() bool { return r.Width() <= 0 }

// Point is a position in data coordinates.
type Point struct {
	X float64
	Y float64
}

// SelectLength picks the candidate bar length closest to
// fraction*range width. Candidates must be sorted ascending and positive.
// On an exact distance tie the smaller candidate wins; this is a fixed rule
// (the scan only replaces the best candidate on a strict improvement), not
// an accident of iteration order.
//
// The range must not be degenerate; behavior for zero-width ranges is
// undefined and callers are expected to validate first.
func SelectLength(r Range, candidates []float64, fraction float64) float64 {
	target := fraction * r.Width()
	best := candidates[0]
	bestDist := abs(candidates[0] - target)
	for _, c := range candidates[1:] {
		if d := abs(c - target); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// SelectLengths picks the time bar length and the dependent-quantity bar
// length for one axis. The dependent candidate set is chosen by isCurrent:
// current traces snap to CurrentLengths, voltage traces to VoltageLengths.
func SelectLengths(xr, yr Range, isCurrent bool, fraction float64) (timeLength, depLength float64) {
	timeLength = SelectLength(xr, TimeLengths, fraction)
	if isCurrent {
		depLength = SelectLength(yr, CurrentLengths, fraction)
	} else {
		depLength = SelectLength(yr, VoltageLengths, fraction)
	}
	return timeLength, depLength
}

// Origin computes the anchor point shared by both bars of the L pair.
//
// The horizontal (time) bar starts 1.2x its own length left of the visible
// data, so it always sits outside the traces. Vertically, a voltage bar sits
// at the axis floor, while a current bar is lifted 30% into the visible band:
// current traces are usually centered near zero and a bar at the very bottom
// would look disconnected from them. The asymmetry is deliberate.
func Origin(xr, yr Range, timeLength float64, isCurrent bool) Point {
	p := Point{X: xr.Min - 1.2*timeLength}
	if isCurrent {
		p.Y = yr.Min + 0.3*yr.Width()
	} else {
		p.Y = yr.Min
	}
	return p
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
