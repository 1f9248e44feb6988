package fb

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Image exposes the session's drawing window as a draw.Image. The
// coordinate space is window-relative: Bounds is (0,0)-(W,H) of the
// active window at the time of each call, writes outside it are
// dropped. Pixels go through the device's pixel format.
type Image struct {
	s *Session
}

// Image returns the draw.Image adapter for the session's window.
func (s *Session) Image() *Image { return &Image{s: s} }

var _ image.Image = (*Image)(nil)
var _ draw.Image = (*Image)(nil)

func (im *Image) ColorModel() color.Model { return color.NRGBAModel }

func (im *Image) Bounds() image.Rectangle {
	if im == nil || im.s == nil {
		return image.Rectangle{}
	}
	win := im.s.Window()
	return image.Rect(0, 0, win.W, win.H)
}

func (im *Image) At(x, y int) color.Color {
	if im == nil || im.s == nil || im.s.shadow == nil {
		return color.NRGBA{}
	}
	if !(image.Point{X: x, Y: y}.In(im.Bounds())) {
		return color.NRGBA{}
	}
	win := im.s.win
	off := (win.Y+y)*im.s.stride + (win.X+x)*4
	v := binary.LittleEndian.Uint32(im.s.shadow[off : off+4])
	r, g, b := im.s.format.Unpack(v)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (im *Image) Set(x, y int, c color.Color) {
	if im == nil || im.s == nil || im.s.shadow == nil || c == nil {
		return
	}
	if !(image.Point{X: x, Y: y}.In(im.Bounds())) {
		return
	}
	win := im.s.win
	off := (win.Y+y)*im.s.stride + (win.X+x)*4
	r, g, b, _ := c.RGBA()
	v := im.s.format.Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	binary.LittleEndian.PutUint32(im.s.shadow[off:off+4], v)
}
