package style

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// fileStyle is the on-disk shape of a custom style. Every field is optional;
// unset fields keep the value of the base preset.
type fileStyle struct {
	Base string `toml:"base"`

	VoltageColor string  `toml:"voltage_color"`
	CurrentColor string  `toml:"current_color"`
	VoltageAlpha float64 `toml:"voltage_alpha"`
	CurrentAlpha float64 `toml:"current_alpha"`

	LineWidth float64 `toml:"linewidth"`

	TitleFontSize     float64 `toml:"title_fontsize"`
	LabelFontSize     float64 `toml:"label_fontsize"`
	TickFontSize      float64 `toml:"tick_fontsize"`
	ScaleBarsFontSize float64 `toml:"scale_bars_fontsize"`

	ScaleBars  bool `toml:"scale_bars"`
	ShowSpines bool `toml:"show_spines"`
	SharedAxis bool `toml:"shared_axis"`
}

// Load reads a custom style from a TOML file. The file names a base preset
// (default "explore") and overrides individual fields:
//
//	base = "paper"
//	voltage_color = "#1f77b4"
//	scale_bars_fontsize = 9
func Load(path string) (Style, error) {
	var fs fileStyle
	md, err := toml.DecodeFile(path, &fs)
	if err != nil {
		return Style{}, fmt.Errorf("style file %s: %w", path, err)
	}
	return merge(fs, md)
}

// Parse decodes a custom style from TOML source, same rules as Load.
func Parse(data string) (Style, error) {
	var fs fileStyle
	md, err := toml.Decode(data, &fs)
	if err != nil {
		return Style{}, fmt.Errorf("style toml: %w", err)
	}
	return merge(fs, md)
}

func merge(fs fileStyle, md toml.MetaData) (Style, error) {
	base := fs.Base
	if base == "" {
		base = "explore"
	}
	st, err := ByName(base)
	if err != nil {
		return Style{}, err
	}

	if md.IsDefined("voltage_color") {
		st.VoltageColor = parseColor(fs.VoltageColor)
	}
	if md.IsDefined("current_color") {
		st.CurrentColor = parseColor(fs.CurrentColor)
	}
	if md.IsDefined("voltage_alpha") {
		st.VoltageAlpha = fs.VoltageAlpha
	}
	if md.IsDefined("current_alpha") {
		st.CurrentAlpha = fs.CurrentAlpha
	}
	if md.IsDefined("linewidth") {
		st.LineWidth = fs.LineWidth
	}
	if md.IsDefined("title_fontsize") {
		st.TitleFontSize = fs.TitleFontSize
	}
	if md.IsDefined("label_fontsize") {
		st.LabelFontSize = fs.LabelFontSize
	}
	if md.IsDefined("tick_fontsize") {
		st.TickFontSize = fs.TickFontSize
	}
	if md.IsDefined("scale_bars_fontsize") {
		st.ScaleBarsFontSize = fs.ScaleBarsFontSize
	}
	if md.IsDefined("scale_bars") {
		st.ScaleBars = fs.ScaleBars
	}
	if md.IsDefined("show_spines") {
		st.ShowSpines = fs.ShowSpines
	}
	if md.IsDefined("shared_axis") {
		st.SharedAxis = fs.SharedAxis
	}
	return st, nil
}

func parseColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}
