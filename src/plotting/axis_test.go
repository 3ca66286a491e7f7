package plotting

import (
	"math"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/DrTaDa/ephysplot/src/scalebar"
)

const eps = 1e-9

func testAxis(t *testing.T) *Axis {
	t.Helper()
	fig, err := NewFigure(6.4, 4.8)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	return fig.Subplots(1)[0]
}

func TestAxis_TransformEndpoints(t *testing.T) {
	a := testAxis(t)
	a.SetXLim(0, 500)
	a.SetYLim(-80, 20)

	if got := a.xToPx(0); got != a.viewport.Left {
		t.Fatalf("xToPx(min) = %d want viewport left %d", got, a.viewport.Left)
	}
	if got := a.xToPx(500); got != a.viewport.Right {
		t.Fatalf("xToPx(max) = %d want viewport right %d", got, a.viewport.Right)
	}
	if got := a.yToPx(-80); got != a.viewport.Bottom {
		t.Fatalf("yToPx(min) = %d want viewport bottom %d", got, a.viewport.Bottom)
	}
	if got := a.yToPx(20); got != a.viewport.Top {
		t.Fatalf("yToPx(max) = %d want viewport top %d", got, a.viewport.Top)
	}
}

func TestAxis_TransformMidpoint(t *testing.T) {
	a := testAxis(t)
	a.SetXLim(0, 100)
	a.SetYLim(0, 100)
	midX := a.viewport.Left + a.viewport.Width()/2
	if got := a.xToPx(50); intAbs(got-midX) > 1 {
		t.Fatalf("xToPx(50) = %d want ~%d", got, midX)
	}
}

func TestAxis_TwinXSharesViewportAndXLimits(t *testing.T) {
	a := testAxis(t)
	a.SetXLim(0, 500)
	a.SetYLim(-80, 20)
	tw := a.TwinX()
	if tw.viewport != a.viewport {
		t.Fatalf("twin viewport %+v differs from %+v", tw.viewport, a.viewport)
	}
	if tw.XLim() != a.XLim() {
		t.Fatalf("twin x limits %+v differ from %+v", tw.XLim(), a.XLim())
	}
	tw.SetYLim(-2, 2)
	if a.YLim() == tw.YLim() {
		t.Fatalf("twin y limits should be independent")
	}
}

func TestAxis_PlotValidation(t *testing.T) {
	a := testAxis(t)
	a.SetXLim(0, 10)
	a.SetYLim(0, 10)
	if err := a.Plot([]float64{1, 2}, []float64{1}, chart.ColorBlack, 1, 1); err == nil {
		t.Fatalf("expected length mismatch error")
	}

	b := testAxis(t)
	// limits never set
	if err := b.Plot([]float64{1, 2}, []float64{1, 2}, chart.ColorBlack, 1, 1); err == nil {
		t.Fatalf("expected error for unset limits")
	}
}

// TestAxisMeasurer_ScalesWithRange: a label's data-unit extent grows linearly
// with the axis range since the pixel extent is fixed by the font.
func TestAxisMeasurer_ScalesWithRange(t *testing.T) {
	a := testAxis(t)
	a.SetXLim(0, 100)
	a.SetYLim(0, 100)
	m1 := a.Measurer(10)
	b1 := m1.Measure("20 ms", scalebar.Point{}, scalebar.HCenter, scalebar.VBottom)
	if b1.Width <= 0 || b1.Height <= 0 {
		t.Fatalf("measured box not positive: %+v", b1)
	}

	a.SetXLim(0, 1000)
	b2 := m1.Measure("20 ms", scalebar.Point{}, scalebar.HCenter, scalebar.VBottom)
	if math.Abs(b2.Width-10*b1.Width) > eps*1e6 {
		t.Fatalf("width did not scale with range: %v vs %v", b2.Width, b1.Width)
	}
	if math.Abs(b2.Height-b1.Height) > eps {
		t.Fatalf("height should not depend on x range: %v vs %v", b2.Height, b1.Height)
	}
}

// TestAxisMeasurer_PositionIndependent: measurement only depends on the text
// and font, not the provisional anchor.
func TestAxisMeasurer_PositionIndependent(t *testing.T) {
	a := testAxis(t)
	a.SetXLim(0, 100)
	a.SetYLim(-80, 20)
	m := a.Measurer(10)
	b1 := m.Measure("10 mV", scalebar.Point{X: 0, Y: 0}, scalebar.HLeft, scalebar.VCenter)
	b2 := m.Measure("10 mV", scalebar.Point{X: -30, Y: -80}, scalebar.HCenter, scalebar.VBottom)
	if b1 != b2 {
		t.Fatalf("measurement moved with anchor: %+v vs %+v", b1, b2)
	}
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
