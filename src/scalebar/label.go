package scalebar

// HAlign is the horizontal anchoring of a label relative to its position.
type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

// VAlign is the vertical anchoring of a label relative to its position.
type VAlign int

const (
	VBottom VAlign = iota
	VCenter
	VTop
)

// Box is the extent of a rendered label, in data units.
type Box struct {
	Width  float64
	Height float64
}

// LabelPlacement is the final position and anchoring of one scale-bar label.
type LabelPlacement struct {
	Text string
	At   Point
	H    HAlign
	V    VAlign
}

// TextMeasurer measures the bounding box a label would occupy if rendered at
// the given position with the given anchoring, in data coordinates.
// Measurement requires realized font metrics, so implementations are backed
// by an actual rendering surface; the surface must exist before Measure is
// called.
type TextMeasurer interface {
	Measure(text string, at Point, h HAlign, v VAlign) Box
}

// TimeLabel returns the label text for a time bar of the given length.
func TimeLabel(length float64) string { return FormatFloat(length) + " ms" }

// DependentLabel returns the label text for the vertical bar: nA for current
// traces, mV for voltage traces.
func DependentLabel(length float64, isCurrent bool) string {
	if isCurrent {
		return FormatFloat(length) + " nA"
	}
	return FormatFloat(length) + " mV"
}

// PlaceLabels computes non-overlapping positions for the two bar labels.
//
// Label extents depend on rendered font metrics, so placement is two-pass:
// each label is provisionally anchored at the bar origin, measured there, and
// then shifted clear of its bar using its own measured size. The time label
// ends up centered under the horizontal bar, the dependent label to the left
// of the vertical bar, vertically centered on its span. Given identical
// measurements the result is identical; placement is idempotent.
//
// The dependent label is always left-anchored, for both units.
func PlaceLabels(origin Point, timeLength, depLength float64, isCurrent bool, m TextMeasurer) (timeLabel, depLabel LabelPlacement) {
	timeLabel = LabelPlacement{
		Text: TimeLabel(timeLength),
		At:   origin,
		H:    HCenter,
		V:    VBottom,
	}
	depLabel = LabelPlacement{
		Text: DependentLabel(depLength, isCurrent),
		At:   origin,
		H:    HLeft,
		V:    VCenter,
	}

	th := m.Measure(timeLabel.Text, timeLabel.At, timeLabel.H, timeLabel.V).Height
	timeLabel.At = Point{
		X: origin.X + 0.5*timeLength,
		Y: origin.Y - 1.8*th,
	}

	dw := m.Measure(depLabel.Text, depLabel.At, depLabel.H, depLabel.V).Width
	depLabel.At = Point{
		X: origin.X - 1.3*dw,
		Y: origin.Y + 0.5*depLength,
	}
	return timeLabel, depLabel
}
