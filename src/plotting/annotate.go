package plotting

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Stamp draws a short annotation onto the bottom-left corner of a rendered
// figure, over a dark backing box so it stays readable on any trace. Used
// for provenance notes on exported figures (cell id, protocol, date).
func Stamp(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()

	const pad = 6
	x := b.Min.X + 8
	y := b.Max.Y - 6

	backing := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, backing, image.Point{}, draw.Over)

	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// RenderStamped renders the figure as PNG with an annotation stamped on it.
func (f *Figure) RenderStamped(w io.Writer, note string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode rendered figure: %w", err)
	}
	if err := png.Encode(w, Stamp(img, note)); err != nil {
		return fmt.Errorf("encode stamped figure: %w", err)
	}
	return nil
}
