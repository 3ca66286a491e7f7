package plotting

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/DrTaDa/ephysplot/src/scalebar"
	"github.com/DrTaDa/ephysplot/src/style"
)

// Scale bars are drawn in black at unit stroke width regardless of style;
// only the label font size follows the style.
const scaleBarWidthPx = 1

// DrawScaleBars draws the L-shaped ms plus mV (or nA, for isCurrent) scale
// bar pair next to the axis, with labels placed clear of the bars using
// measured text extents. The axis limits must be set and non-degenerate.
func DrawScaleBars(axis *Axis, isCurrent bool, st style.Style) error {
	xr, yr := axis.XLim(), axis.YLim()
	if xr.Degenerate() || yr.Degenerate() {
		return fmt.Errorf("scale bars need a positive-width view: %w", ErrDegenerateRange)
	}

	timeLen, depLen := scalebar.SelectLengths(xr, yr, isCurrent, scalebar.DefaultBarFraction)
	origin := scalebar.Origin(xr, yr, timeLen, isCurrent)
	Debugf("scale bars: time=%g dep=%g origin=(%g, %g) current=%v", timeLen, depLen, origin.X, origin.Y, isCurrent)

	axis.DrawSegment(origin.X, origin.Y, origin.X+timeLen, origin.Y, chart.ColorBlack, scaleBarWidthPx)
	axis.DrawSegment(origin.X, origin.Y, origin.X, origin.Y+depLen, chart.ColorBlack, scaleBarWidthPx)

	m := axis.Measurer(st.ScaleBarsFontSize)
	timeLabel, depLabel := scalebar.PlaceLabels(origin, timeLen, depLen, isCurrent, m)

	if GetLogLevel() == LevelDebug {
		drawPlacementBox(axis, m, timeLabel)
		drawPlacementBox(axis, m, depLabel)
	}

	axis.Text(timeLabel.Text, timeLabel.At, timeLabel.H, timeLabel.V, st.ScaleBarsFontSize, chart.ColorBlack)
	axis.Text(depLabel.Text, depLabel.At, depLabel.H, depLabel.V, st.ScaleBarsFontSize, chart.ColorBlack)
	return nil
}

// drawPlacementBox outlines the final bounding box of a placed label, the
// debug view of the measure-then-place pass.
func drawPlacementBox(axis *Axis, m scalebar.TextMeasurer, lp scalebar.LabelPlacement) {
	b := m.Measure(lp.Text, lp.At, lp.H, lp.V)
	x := lp.At.X
	switch lp.H {
	case scalebar.HCenter:
		x -= 0.5 * b.Width
	case scalebar.HRight:
		x -= b.Width
	}
	y := lp.At.Y
	switch lp.V {
	case scalebar.VCenter:
		y -= 0.5 * b.Height
	case scalebar.VTop:
		y -= b.Height
	}
	axis.strokeBox(x, y, b.Width, b.Height, chart.ColorBlue)
}
