// Package plotting renders electrophysiology traces (voltage and optional
// current over time) as annotated figures. A Figure owns an explicit raster
// surface; there is no ambient "current figure" state, every operation takes
// the axis or figure it draws on.
package plotting

import (
	"fmt"
	"io"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pxPerInch converts the inch-based figure-size heuristic to pixels.
const pxPerInch = 100

// Pixel bounds for a rendered figure. The size heuristic can ask for very
// tall figures (stacked subplots plus title room); the clamp keeps memory
// use sane.
const (
	minFigurePx = 320
	maxFigurePx = 4000
)

// Subplot padding inside the figure, px. The left band is wide so scale bars
// and their labels, which sit outside the data range, stay on the canvas.
var subplotPad = chart.Box{Top: 20, Left: 110, Right: 30, Bottom: 55}

// Figure is one rendering surface. It is not safe for concurrent use; one
// plot is constructed at a time per figure.
type Figure struct {
	width  int
	height int
	r      chart.Renderer

	titleBand int
}

// NewFigure allocates a white raster surface of the given size in inches.
func NewFigure(widthInches, heightInches float64) (*Figure, error) {
	w := clampPx(int(widthInches * pxPerInch))
	h := clampPx(int(heightInches * pxPerInch))

	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, fmt.Errorf("create raster surface: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)

	f := &Figure{width: w, height: h, r: r}
	f.fillBackground()
	Debugf("new figure %dx%d px (%gx%g in)", w, h, widthInches, heightInches)
	return f, nil
}

// Width returns the surface width in pixels.
func (f *Figure) Width() int { return f.width }

// Height returns the surface height in pixels.
func (f *Figure) Height() int { return f.height }

func (f *Figure) fillBackground() {
	f.r.SetFillColor(chart.ColorWhite)
	f.r.MoveTo(0, 0)
	f.r.LineTo(f.width, 0)
	f.r.LineTo(f.width, f.height)
	f.r.LineTo(0, f.height)
	f.r.Close()
	f.r.Fill()
}

// DrawTitle draws a centered title across the top of the figure and reserves
// a band for it. Call before Subplots so the axes are laid out below the
// title.
func (f *Figure) DrawTitle(title string, fontSize float64) {
	if title == "" {
		return
	}
	f.r.SetFontSize(fontSize)
	f.r.SetFontColor(chart.ColorBlack)
	box := f.r.MeasureText(title)
	x := (f.width - box.Width()) / 2
	y := box.Height() + 10
	f.r.Text(title, x, y)
	f.titleBand = box.Height() + 20
}

// Subplots splits the drawable area into n vertically stacked axes.
func (f *Figure) Subplots(n int) []*Axis {
	if n < 1 {
		n = 1
	}
	usable := f.height - f.titleBand
	rowH := usable / n
	axes := make([]*Axis, n)
	for i := 0; i < n; i++ {
		top := f.titleBand + i*rowH
		axes[i] = &Axis{
			fig: f,
			viewport: chart.Box{
				Top:    top + subplotPad.Top,
				Left:   subplotPad.Left,
				Right:  f.width - subplotPad.Right,
				Bottom: top + rowH - subplotPad.Bottom,
			},
		}
	}
	return axes
}

// Render encodes the figure as PNG.
func (f *Figure) Render(w io.Writer) error {
	defer TimeTrack(time.Now(), "render figure")
	if err := f.r.Save(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the figure to a file.
func (f *Figure) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	if err := f.Render(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func clampPx(v int) int {
	if v < minFigurePx {
		return minFigurePx
	}
	if v > maxFigurePx {
		return maxFigurePx
	}
	return v
}

func applyAlpha(c drawing.Color, alpha float64) drawing.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha * 255)
	return c
}
