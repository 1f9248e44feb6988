package gfx

import (
	"image"
	"image/color"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawString renders text into dst with the top-left corner of the first
// glyph box at (x, y). The destination is typically a Session.Image().
func DrawString(dst draw.Image, face xfont.Face, c RGB, x, y int, text string) {
	if dst == nil || face == nil || len(text) == 0 {
		return
	}
	d := drawer(dst, face, c)
	b := dst.Bounds()
	d.Dot = fixed.P(b.Min.X+x, b.Min.Y+y+face.Metrics().Ascent.Ceil())
	d.DrawString(text)
}

// CenterString renders text horizontally centered within dst's bounds,
// with the top of the glyph boxes at height y.
func CenterString(dst draw.Image, face xfont.Face, c RGB, y int, text string) {
	if dst == nil || face == nil || len(text) == 0 {
		return
	}
	d := drawer(dst, face, c)
	b := dst.Bounds()
	x := b.Min.X + (b.Dx()-d.MeasureString(text).Ceil())/2
	d.Dot = fixed.P(x, b.Min.Y+y+face.Metrics().Ascent.Ceil())
	d.DrawString(text)
}

func drawer(dst draw.Image, face xfont.Face, c RGB) *xfont.Drawer {
	return &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}),
		Face: face,
	}
}
