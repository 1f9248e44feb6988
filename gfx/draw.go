// Package gfx draws into a framebuffer surface: fills, lines, rectangle
// outlines and text. Coordinates are relative to the surface's active
// window and everything is clipped to it.
package gfx

import (
	"encoding/binary"

	"github.com/roman65536/tfblib/fb"
)

// RGB is a device-independent color, packed through the surface's pixel
// format at draw time.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black   = RGB{0x00, 0x00, 0x00}
	White   = RGB{0xFF, 0xFF, 0xFF}
	Red     = RGB{0xFF, 0x00, 0x00}
	Green   = RGB{0x00, 0xFF, 0x00}
	Blue    = RGB{0x00, 0x00, 0xFF}
	Yellow  = RGB{0xFF, 0xFF, 0x00}
	Magenta = RGB{0xFF, 0x00, 0xFF}
	Cyan    = RGB{0x00, 0xFF, 0xFF}
	Gray    = RGB{0x80, 0x80, 0x80}
)

// GrayLevel returns the gray shade of the given intensity.
func GrayLevel(v uint8) RGB { return RGB{v, v, v} }

// PutPixel sets one pixel. Writes outside the window are dropped.
func PutPixel(s fb.Surface, x, y int, c RGB) {
	if s == nil {
		return
	}
	win := s.Window()
	if x < 0 || y < 0 || x >= win.W || y >= win.H {
		return
	}
	pix := s.Format().Pack(c.R, c.G, c.B)
	off := (win.Y+y)*s.Stride() + (win.X+x)*4
	binary.LittleEndian.PutUint32(s.Pixels()[off:off+4], pix)
}

// FillRect fills the rectangle, clipped to the window.
func FillRect(s fb.Surface, x, y, w, h int, c RGB) {
	if s == nil {
		return
	}
	win := s.Window()
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > win.W {
		w = win.W - x
	}
	if y+h > win.H {
		h = win.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	pix := s.Format().Pack(c.R, c.G, c.B)
	stride := s.Stride()
	buf := s.Pixels()
	off := (win.Y+y)*stride + (win.X+x)*4
	for i := 0; i < h; i++ {
		for p := off; p < off+w*4; p += 4 {
			binary.LittleEndian.PutUint32(buf[p:p+4], pix)
		}
		off += stride
	}
}

// Clear fills the whole window.
func Clear(s fb.Surface, c RGB) {
	if s == nil {
		return
	}
	win := s.Window()
	FillRect(s, 0, 0, win.W, win.H, c)
}

// ClearScreen fills the whole device, ignoring the window.
func ClearScreen(s fb.Surface, c RGB) {
	if s == nil {
		return
	}
	pix := s.Format().Pack(c.R, c.G, c.B)
	stride := s.Stride()
	buf := s.Pixels()
	for y := 0; y < s.Height(); y++ {
		off := y * stride
		for p := off; p < off+s.Width()*4; p += 4 {
			binary.LittleEndian.PutUint32(buf[p:p+4], pix)
		}
	}
}

func DrawHLine(s fb.Surface, x, y, w int, c RGB) { FillRect(s, x, y, w, 1, c) }

func DrawVLine(s fb.Surface, x, y, h int, c RGB) { FillRect(s, x, y, 1, h, c) }

// DrawRect draws the rectangle's outline.
func DrawRect(s fb.Surface, x, y, w, h int, c RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	DrawHLine(s, x, y, w, c)
	DrawHLine(s, x, y+h-1, w, c)
	DrawVLine(s, x, y, h, c)
	DrawVLine(s, x+w-1, y, h, c)
}

// DrawLine draws a straight line between two points, Bresenham style.
func DrawLine(s fb.Surface, x0, y0, x1, y1 int, c RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		PutPixel(s, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
