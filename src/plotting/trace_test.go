package plotting

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/DrTaDa/ephysplot/src/style"
)

// synthetic recording: a resting membrane with one square current step and a
// crude depolarization during it.
func syntheticTrace(n int) (ts, vs, cs []float64) {
	ts = make([]float64, n)
	vs = make([]float64, n)
	cs = make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) * 0.5 // 0.5 ms sampling
		ts[i] = t
		vs[i] = -80 + 5*math.Sin(t/20)
		if t > 100 && t < 400 {
			cs[i] = 0.6
			vs[i] += 25
		}
	}
	return ts, vs, cs
}

func pngMagic(b []byte) bool {
	return len(b) > 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n"))
}

func TestPlotTrace_VoltageOnly(t *testing.T) {
	ts, vs, _ := syntheticTrace(1200)
	fig, axes, err := PlotTrace(ts, vs, TraceOptions{})
	if err != nil {
		t.Fatalf("PlotTrace: %v", err)
	}
	if len(axes) != 1 {
		t.Fatalf("got %d axes, want 1", len(axes))
	}
	if xr := axes[0].XLim(); xr.Min != ts[0] || xr.Max != ts[len(ts)-1] {
		t.Fatalf("x limits %+v not fit to data", xr)
	}
	var buf bytes.Buffer
	if err := fig.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !pngMagic(buf.Bytes()) {
		t.Fatalf("rendered output is not a PNG")
	}
}

func TestPlotTrace_WithCurrentStacksSubplots(t *testing.T) {
	ts, vs, cs := syntheticTrace(1200)
	_, axes, err := PlotTrace(ts, vs, TraceOptions{Current: cs, Title: "cell 3, step protocol"})
	if err != nil {
		t.Fatalf("PlotTrace: %v", err)
	}
	if len(axes) != 2 {
		t.Fatalf("got %d axes, want 2 (current above voltage)", len(axes))
	}
}

func TestPlotTrace_SharedAxisSingleSubplot(t *testing.T) {
	ts, vs, cs := syntheticTrace(800)
	st := style.Explore()
	st.SharedAxis = true
	_, axes, err := PlotTrace(ts, vs, TraceOptions{Current: cs, Style: &st})
	if err != nil {
		t.Fatalf("PlotTrace: %v", err)
	}
	if len(axes) != 1 {
		t.Fatalf("got %d axes, want 1 shared", len(axes))
	}
}

func TestPlotTrace_PaperStyleScaleBars(t *testing.T) {
	ts, vs, cs := syntheticTrace(1200)
	fig, _, err := PlotTrace(ts, vs, TraceOptions{Current: cs, StyleName: "paper"})
	if err != nil {
		t.Fatalf("PlotTrace paper: %v", err)
	}
	var buf bytes.Buffer
	if err := fig.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !pngMagic(buf.Bytes()) {
		t.Fatalf("rendered output is not a PNG")
	}
}

func TestPlotTrace_UnknownStyleName(t *testing.T) {
	ts, vs, _ := syntheticTrace(100)
	_, _, err := PlotTrace(ts, vs, TraceOptions{StyleName: "neon"})
	if !errors.Is(err, style.ErrUnknownStyle) {
		t.Fatalf("err = %v, want ErrUnknownStyle", err)
	}
}

func TestPlotTrace_AxisCountMismatch(t *testing.T) {
	ts, vs, cs := syntheticTrace(400)
	fig, err := NewFigure(6.4, 4.8)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	axes := fig.Subplots(1)
	// current present and no shared axis: needs 2 axes, supplying 1
	_, _, err = PlotTrace(ts, vs, TraceOptions{Current: cs, Axes: axes})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestPlotTrace_ReusesSuppliedAxes(t *testing.T) {
	ts, vs, _ := syntheticTrace(400)
	fig, err := NewFigure(6.4, 4.8)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	axes := fig.Subplots(1)
	gotFig, gotAxes, err := PlotTrace(ts, vs, TraceOptions{Axes: axes})
	if err != nil {
		t.Fatalf("PlotTrace: %v", err)
	}
	if gotFig != fig {
		t.Fatalf("returned figure is not the supplied one")
	}
	if len(gotAxes) != 1 || gotAxes[0] != axes[0] {
		t.Fatalf("returned axes are not the supplied ones")
	}
}

func TestPlotTrace_DegenerateInputs(t *testing.T) {
	ts, vs, _ := syntheticTrace(100)

	cases := []struct {
		name string
		ts   []float64
		vs   []float64
	}{
		{"empty series", nil, nil},
		{"zero time span", []float64{5, 5, 5}, []float64{-80, -70, -60}},
		{"flat voltage", []float64{0, 1, 2}, []float64{-70, -70, -70}},
	}
	for _, c := range cases {
		if _, _, err := PlotTrace(c.ts, c.vs, TraceOptions{}); !errors.Is(err, ErrDegenerateRange) {
			t.Fatalf("%s: err = %v, want ErrDegenerateRange", c.name, err)
		}
	}

	flat := make([]float64, len(ts))
	if _, _, err := PlotTrace(ts, vs, TraceOptions{Current: flat}); !errors.Is(err, ErrDegenerateRange) {
		t.Fatalf("flat current: want ErrDegenerateRange")
	}
}

func TestPlotTrace_LengthMismatch(t *testing.T) {
	ts, vs, _ := syntheticTrace(100)
	if _, _, err := PlotTrace(ts, vs[:50], TraceOptions{}); err == nil {
		t.Fatalf("expected error for mismatched series lengths")
	}
	if _, _, err := PlotTrace(ts, vs, TraceOptions{Current: make([]float64, 7)}); err == nil {
		t.Fatalf("expected error for mismatched current length")
	}
}

func TestNPlots(t *testing.T) {
	cases := []struct {
		nV, nC int
		shared bool
		want   int
	}{
		{1, 0, false, 1},
		{1, 1, false, 2},
		{1, 1, true, 1},
		{1, 0, true, 1},
	}
	for _, c := range cases {
		if got := NPlots(c.nV, c.nC, c.shared); got != c.want {
			t.Fatalf("NPlots(%d, %d, %v) = %d want %d", c.nV, c.nC, c.shared, got, c.want)
		}
	}
}

func TestFigSize_DoesNotCollapse(t *testing.T) {
	for _, st := range []style.Style{style.Explore(), style.Paper()} {
		for n := 1; n <= 3; n++ {
			for _, hasTitle := range []bool{false, true} {
				w, h := FigSize(n, hasTitle, st)
				if w <= 0 || h <= 0 {
					t.Fatalf("FigSize(%d, %v) = (%v, %v)", n, hasTitle, w, h)
				}
			}
		}
	}
}
