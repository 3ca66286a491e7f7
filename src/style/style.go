// Package style holds the plotting style presets. A Style is a plain value:
// pick one of the presets, resolve one by name, or build your own and pass it
// to the plotting calls. There is no mutation after selection.
package style

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrUnknownStyle is returned by ByName for names outside the preset table.
var ErrUnknownStyle = errors.New("unknown style")

// Style bundles every visual knob of a trace plot.
type Style struct {
	VoltageColor drawing.Color
	CurrentColor drawing.Color
	VoltageAlpha float64 // 0..1
	CurrentAlpha float64 // 0..1

	LineWidth float64 // trace stroke width, px

	TitleFontSize     float64
	LabelFontSize     float64
	TickFontSize      float64
	ScaleBarsFontSize float64

	// ScaleBars replaces axis ticks and labels with ms/mV (or nA) scale bars.
	ScaleBars bool
	// ShowSpines draws the axis frame and ticks.
	ShowSpines bool
	// SharedAxis plots voltage and current on one axis (twin y scales)
	// instead of stacked subplots.
	SharedAxis bool
}

// Explore is the default on-screen style: framed axes with ticks, no scale
// bars, saturated colors.
func Explore() Style {
	return Style{
		VoltageColor:      drawing.Color{R: 31, G: 119, B: 180, A: 255},
		CurrentColor:      drawing.Color{R: 214, G: 39, B: 40, A: 255},
		VoltageAlpha:      1.0,
		CurrentAlpha:      1.0,
		LineWidth:         1.0,
		TitleFontSize:     14,
		LabelFontSize:     12,
		TickFontSize:      10,
		ScaleBarsFontSize: 10,
		ScaleBars:         false,
		ShowSpines:        true,
		SharedAxis:        false,
	}
}

// Paper is the publication style: no frame, scale bars instead of ticks,
// near-black traces with a thinner stroke.
func Paper() Style {
	return Style{
		VoltageColor:      drawing.Color{R: 20, G: 20, B: 20, A: 255},
		CurrentColor:      drawing.Color{R: 90, G: 90, B: 90, A: 255},
		VoltageAlpha:      1.0,
		CurrentAlpha:      0.8,
		LineWidth:         0.8,
		TitleFontSize:     12,
		LabelFontSize:     10,
		TickFontSize:      8,
		ScaleBarsFontSize: 8,
		ScaleBars:         true,
		ShowSpines:        false,
		SharedAxis:        false,
	}
}

var presets = map[string]func() Style{
	"explore": Explore,
	"paper":   Paper,
}

// ByName resolves a preset name. Unrecognized names fail with
// ErrUnknownStyle.
func ByName(name string) (Style, error) {
	p, ok := presets[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q (have: %v)", ErrUnknownStyle, name, Names())
	}
	return p(), nil
}

// Names lists the recognized preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
