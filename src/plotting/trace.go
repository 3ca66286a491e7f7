package plotting

import (
	"fmt"
	"time"

	"github.com/DrTaDa/ephysplot/src/style"
)

// TraceOptions are the optional knobs of PlotTrace. The zero value plots a
// voltage-only trace in the explore style on a fresh figure.
type TraceOptions struct {
	// Current is the injected current series in nA, same length as the
	// time series. Nil means voltage only.
	Current []float64
	// Title, when set, is drawn across the top of the figure.
	Title string
	// Axes, when set, reuses caller-supplied axes instead of creating a
	// figure. Its length must match the required subplot count.
	Axes []*Axis
	// Style is used as-is when non-nil and takes precedence over
	// StyleName.
	Style *style.Style
	// StyleName resolves a preset ("explore", "paper"). Empty means
	// explore.
	StyleName string
}

func (o TraceOptions) resolveStyle() (style.Style, error) {
	if o.Style != nil {
		return *o.Style, nil
	}
	if o.StyleName != "" {
		return style.ByName(o.StyleName)
	}
	return style.Explore(), nil
}

// NPlots computes the number of subplots needed: current traces get their
// own axis unless the style shares one.
func NPlots(nVoltageSeries, nCurrentSeries int, sharedAxis bool) int {
	if sharedAxis || nCurrentSeries == 0 {
		return nVoltageSeries
	}
	return nVoltageSeries + nCurrentSeries
}

// FigSize computes the figure size in inches for n stacked subplots. Rough
// heuristic: extra width for scale bars, extra height for a title, extra
// room all around for spines.
func FigSize(nPlots int, hasTitle bool, st style.Style) (w, h float64) {
	w = 6.4
	h = 4.8 * float64(nPlots)
	if st.ScaleBars {
		w += 1
	}
	if hasTitle {
		h += 0.1 * st.TitleFontSize
	}
	if st.ShowSpines {
		w += 1
		h += 1
	}
	return w, h
}

// PlotTrace plots a single electrophysiological trace: voltage in mV against
// time in ms, with an optional current series in nA. It returns the figure
// and the axes used so the caller can keep drawing or save.
//
// Empty series and zero-width data ranges fail fast with
// ErrDegenerateRange. A caller-supplied axis slice of the wrong length fails
// with ErrShapeMismatch before anything is drawn.
func PlotTrace(timeSeries, voltageSeries []float64, opt TraceOptions) (*Figure, []*Axis, error) {
	defer TimeTrack(time.Now(), "plot trace")

	st, err := opt.resolveStyle()
	if err != nil {
		return nil, nil, err
	}

	if len(timeSeries) == 0 || len(voltageSeries) == 0 {
		return nil, nil, fmt.Errorf("empty series: %w", ErrDegenerateRange)
	}
	if len(voltageSeries) != len(timeSeries) {
		return nil, nil, fmt.Errorf("voltage series length %d != time series length %d", len(voltageSeries), len(timeSeries))
	}
	if opt.Current != nil && len(opt.Current) != len(timeSeries) {
		return nil, nil, fmt.Errorf("current series length %d != time series length %d", len(opt.Current), len(timeSeries))
	}

	t0, tEnd := timeSeries[0], timeSeries[len(timeSeries)-1]
	if tEnd <= t0 {
		return nil, nil, fmt.Errorf("time span [%g, %g]: %w", t0, tEnd, ErrDegenerateRange)
	}
	vMin, vMax := minMax(voltageSeries)
	if vMax <= vMin {
		return nil, nil, fmt.Errorf("voltage span [%g, %g]: %w", vMin, vMax, ErrDegenerateRange)
	}
	var cMin, cMax float64
	if opt.Current != nil {
		cMin, cMax = minMax(opt.Current)
		if cMax <= cMin {
			return nil, nil, fmt.Errorf("current span [%g, %g]: %w", cMin, cMax, ErrDegenerateRange)
		}
	}

	nCurrent := 0
	if opt.Current != nil {
		nCurrent = 1
	}
	nPlots := NPlots(1, nCurrent, st.SharedAxis)

	var fig *Figure
	axes := opt.Axes
	if axes == nil {
		w, h := FigSize(nPlots, opt.Title != "", st)
		fig, err = NewFigure(w, h)
		if err != nil {
			return nil, nil, err
		}
		fig.DrawTitle(opt.Title, st.TitleFontSize)
		axes = fig.Subplots(nPlots)
	} else {
		if len(axes) != nPlots {
			return nil, nil, fmt.Errorf("%w: got %d axes, need %d", ErrShapeMismatch, len(axes), nPlots)
		}
		fig = axes[0].Figure()
		fig.DrawTitle(opt.Title, st.TitleFontSize)
	}

	var axisVoltage, axisCurrent *Axis
	if opt.Current != nil {
		axisCurrent = axes[0]
		if st.SharedAxis {
			axisVoltage = axes[0].TwinX()
		} else {
			axisVoltage = axes[len(axes)-1]
		}
	} else {
		axisVoltage = axes[0]
	}

	// Fit the view to the data's own extent.
	axisVoltage.SetXLim(t0, tEnd)
	axisVoltage.SetYLim(vMin, vMax)
	if axisCurrent != nil {
		axisCurrent.SetXLim(t0, tEnd)
		axisCurrent.SetYLim(cMin, cMax)
	}

	if st.ShowSpines {
		axisVoltage.DrawSpines(st.TickFontSize)
		if axisCurrent != nil && !st.SharedAxis {
			axisCurrent.DrawSpines(st.TickFontSize)
		}
	}

	if axisCurrent != nil {
		if err := axisCurrent.Plot(timeSeries, opt.Current, st.CurrentColor, st.CurrentAlpha, st.LineWidth); err != nil {
			return nil, nil, err
		}
	}
	if err := axisVoltage.Plot(timeSeries, voltageSeries, st.VoltageColor, st.VoltageAlpha, st.LineWidth); err != nil {
		return nil, nil, err
	}

	if st.ScaleBars {
		if err := DrawScaleBars(axisVoltage, false, st); err != nil {
			return nil, nil, err
		}
		if axisCurrent != nil {
			if err := DrawScaleBars(axisCurrent, true, st); err != nil {
				return nil, nil, err
			}
		}
	} else {
		axisVoltage.DrawAxisLabels("Time (ms)", "Voltage (mV)", st.LabelFontSize)
		if axisCurrent != nil {
			axisCurrent.DrawAxisLabels("Time (ms)", "Current (nA)", st.LabelFontSize)
		}
	}

	return fig, axes, nil
}

func minMax(vals []float64) (float64, float64) {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
