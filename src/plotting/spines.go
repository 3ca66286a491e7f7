package plotting

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	tickMarkPx   = 5
	tickCount    = 6
	tickGapPx    = 4
	labelBandPx  = 30
	spineWidthPx = 1
)

// DrawSpines draws the axis frame and nice-valued tick marks with labels.
// Limits must be set first. In the immediate-mode surface model spines are
// opt-in: a style that hides them simply never asks for them.
func (a *Axis) DrawSpines(tickFontSize float64) {
	r := a.fig.r
	vp := a.viewport

	r.SetStrokeColor(chart.ColorBlack)
	r.SetStrokeWidth(spineWidthPx)
	r.MoveTo(vp.Left, vp.Top)
	r.LineTo(vp.Right, vp.Top)
	r.LineTo(vp.Right, vp.Bottom)
	r.LineTo(vp.Left, vp.Bottom)
	r.LineTo(vp.Left, vp.Top)
	r.Stroke()

	r.SetFontSize(tickFontSize)
	r.SetFontColor(chart.ColorBlack)

	for _, t := range niceTicks(a.xr, tickCount) {
		x := a.xToPx(t.value)
		r.SetStrokeColor(chart.ColorBlack)
		r.SetStrokeWidth(spineWidthPx)
		r.MoveTo(x, vp.Bottom)
		r.LineTo(x, vp.Bottom+tickMarkPx)
		r.Stroke()
		box := r.MeasureText(t.label)
		r.Text(t.label, x-box.Width()/2, vp.Bottom+tickMarkPx+tickGapPx+box.Height())
	}

	for _, t := range niceTicks(a.yr, tickCount) {
		y := a.yToPx(t.value)
		r.SetStrokeColor(chart.ColorBlack)
		r.SetStrokeWidth(spineWidthPx)
		r.MoveTo(vp.Left-tickMarkPx, y)
		r.LineTo(vp.Left, y)
		r.Stroke()
		box := r.MeasureText(t.label)
		r.Text(t.label, vp.Left-tickMarkPx-tickGapPx-box.Width(), y+box.Height()/2)
	}
}

// DrawAxisLabels draws the conventional "Time (ms)" / "Voltage (mV)" style
// labels below and left of the viewport.
func (a *Axis) DrawAxisLabels(xlabel, ylabel string, fontSize float64) {
	r := a.fig.r
	vp := a.viewport
	r.SetFontSize(fontSize)
	r.SetFontColor(chart.ColorBlack)

	if xlabel != "" {
		box := r.MeasureText(xlabel)
		x := vp.Left + (vp.Width()-box.Width())/2
		r.Text(xlabel, x, vp.Bottom+labelBandPx+box.Height())
	}
	if ylabel != "" {
		box := r.MeasureText(ylabel)
		x := vp.Left - labelBandPx - 2*tickMarkPx
		y := vp.Top + (vp.Height()+box.Width())/2
		r.SetTextRotation(-math.Pi / 2)
		r.Text(ylabel, x, y)
		r.ClearTextRotation()
	}
}
