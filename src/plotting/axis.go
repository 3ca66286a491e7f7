package plotting

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/DrTaDa/ephysplot/src/scalebar"
)

// Axis is one data viewport on a Figure. Drawing is immediate: set the
// limits first, then draw; there is no retained scene.
type Axis struct {
	fig      *Figure
	viewport chart.Box
	xr, yr   scalebar.Range
}

// Figure returns the surface this axis draws on.
func (a *Axis) Figure() *Figure { return a.fig }

// SetXLim sets the visible time bounds, in ms.
func (a *Axis) SetXLim(min, max float64) { a.xr = scalebar.Range{Min: min, Max: max} }

// SetYLim sets the visible bounds of the dependent quantity.
func (a *Axis) SetYLim(min, max float64) { a.yr = scalebar.Range{Min: min, Max: max} }

// XLim returns the visible time bounds.
func (a *Axis) XLim() scalebar.Range { return a.xr }

// YLim returns the visible dependent-quantity bounds.
func (a *Axis) YLim() scalebar.Range { return a.yr }

// TwinX returns a second axis over the same viewport sharing the x limits,
// with its own y scale. Mirrors plotting voltage and current on one subplot.
func (a *Axis) TwinX() *Axis {
	return &Axis{fig: a.fig, viewport: a.viewport, xr: a.xr}
}

func (a *Axis) xToPx(v float64) int {
	return a.viewport.Left + int(math.Round((v-a.xr.Min)/a.xr.Width()*float64(a.viewport.Width())))
}

func (a *Axis) yToPx(v float64) int {
	return a.viewport.Bottom - int(math.Round((v-a.yr.Min)/a.yr.Width()*float64(a.viewport.Height())))
}

// Plot draws one polyline trace in data coordinates. Limits must be set
// before plotting.
func (a *Axis) Plot(xs, ys []float64, col drawing.Color, alpha, width float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("series length mismatch: %d x values vs %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("empty series: %w", ErrDegenerateRange)
	}
	if a.xr.Degenerate() || a.yr.Degenerate() {
		return fmt.Errorf("axis limits not set: %w", ErrDegenerateRange)
	}
	r := a.fig.r
	r.SetStrokeColor(applyAlpha(col, alpha))
	r.SetStrokeWidth(width)
	r.MoveTo(a.xToPx(xs[0]), a.yToPx(ys[0]))
	for i := 1; i < len(xs); i++ {
		r.LineTo(a.xToPx(xs[i]), a.yToPx(ys[i]))
	}
	r.Stroke()
	return nil
}

// DrawSegment draws a single straight line in data coordinates. The segment
// is not clipped to the viewport; scale bars rely on drawing outside it.
func (a *Axis) DrawSegment(x0, y0, x1, y1 float64, col drawing.Color, width float64) {
	r := a.fig.r
	r.SetStrokeColor(col)
	r.SetStrokeWidth(width)
	r.MoveTo(a.xToPx(x0), a.yToPx(y0))
	r.LineTo(a.xToPx(x1), a.yToPx(y1))
	r.Stroke()
}

// Text draws a label anchored at a data-coordinate position.
func (a *Axis) Text(s string, at scalebar.Point, h scalebar.HAlign, v scalebar.VAlign, fontSize float64, col drawing.Color) {
	r := a.fig.r
	r.SetFontSize(fontSize)
	r.SetFontColor(col)
	box := r.MeasureText(s)

	x := a.xToPx(at.X)
	switch h {
	case scalebar.HCenter:
		x -= box.Width() / 2
	case scalebar.HRight:
		x -= box.Width()
	}

	// Text renders from the baseline; approximate the baseline from the
	// measured height for the vertical anchor.
	y := a.yToPx(at.Y)
	switch v {
	case scalebar.VCenter:
		y += box.Height() / 2
	case scalebar.VTop:
		y += box.Height()
	}
	r.Text(s, x, y)
}

// Measurer returns a scalebar.TextMeasurer backed by this axis's rendering
// surface at the given font size. The surface exists from figure creation,
// so measurements are always against realized font metrics.
func (a *Axis) Measurer(fontSize float64) scalebar.TextMeasurer {
	return &axisMeasurer{a: a, fontSize: fontSize}
}

type axisMeasurer struct {
	a        *Axis
	fontSize float64
}

// Measure reports the extent a label would occupy, converted to data units.
// Horizontal text has position-independent extents, so the provisional
// anchor only participates in the contract, not in the math.
func (m *axisMeasurer) Measure(text string, at scalebar.Point, h scalebar.HAlign, v scalebar.VAlign) scalebar.Box {
	r := m.a.fig.r
	r.SetFontSize(m.fontSize)
	box := r.MeasureText(text)
	b := scalebar.Box{
		Width:  float64(box.Width()) * m.a.xr.Width() / float64(m.a.viewport.Width()),
		Height: float64(box.Height()) * m.a.yr.Width() / float64(m.a.viewport.Height()),
	}
	Debugf("measured %q at (%g, %g): %g x %g data units", text, at.X, at.Y, b.Width, b.Height)
	return b
}

// strokeBox outlines a data-coordinate rectangle. Debug aid for label
// placement.
func (a *Axis) strokeBox(x, y, w, h float64, col drawing.Color) {
	a.DrawSegment(x, y, x+w, y, col, 1)
	a.DrawSegment(x+w, y, x+w, y+h, col, 1)
	a.DrawSegment(x+w, y+h, x, y+h, col, 1)
	a.DrawSegment(x, y+h, x, y, col, 1)
}
