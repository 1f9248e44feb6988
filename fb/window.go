package fb

import (
	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

// Window is the rectangle of the screen currently eligible for drawing
// and flushing. X and Y are device coordinates and include the base
// offset the device reports; EndX and EndY are X+W and Y+H. Produced by
// SetWindow, never constructed by callers.
type Window struct {
	X    int
	Y    int
	W    int
	H    int
	EndX int
	EndY int
}

// SetWindow replaces the drawing window. The rectangle is given in
// screen coordinates and must lie fully inside the screen; otherwise
// ErrInvalidWindow is returned and the active window stays unchanged.
// There is no clamping.
func (s *Session) SetWindow(x, y, w, h int) error {
	if s == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if s.shadow == nil {
		return errors.New(consts.ErrNotAcquired)
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > s.w || y+h > s.h {
		return errors.Tag(consts.ErrInvalidWindow,
			errors.Errorf(`window %dx%d at (%d,%d) outside %dx%d screen`, w, h, x, y, s.w, s.h))
	}
	win := Window{X: s.baseX + x, Y: s.baseY + y, W: w, H: h}
	win.EndX = win.X + win.W
	win.EndY = win.Y + win.H
	if w > 0 && h > 0 {
		// row offsets are validated here once, not per flush
		if last := (win.EndY-1)*s.stride + win.EndX*4; last > len(s.shadow) {
			return errors.Tag(consts.ErrInvalidWindow,
				errors.Errorf(`window ends at byte %d of a %d byte buffer`, last, len(s.shadow)))
		}
	}
	s.win = win
	return nil
}

// FlushWindow copies the window's rows from the shadow buffer to the
// device. Without a shadow buffer writes already hit the device and
// this is a no-op. Bytes outside the window are never touched.
func (s *Session) FlushWindow() error {
	if s == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if s.shadow == nil {
		return errors.New(consts.ErrNotAcquired)
	}
	if !s.shadowed {
		return nil
	}
	win := s.win
	rowLen := win.W * 4
	off := win.Y*s.stride + win.X*4
	for i := 0; i < win.H; i++ {
		copy(s.mapped[off:off+rowLen], s.shadow[off:off+rowLen])
		off += s.stride
	}
	return nil
}

// FlushRect copies only the given window-relative rectangle, clipped to
// the active window. Useful for partial updates.
func (s *Session) FlushRect(x, y, w, h int) error {
	if s == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if s.shadow == nil {
		return errors.New(consts.ErrNotAcquired)
	}
	if !s.shadowed {
		return nil
	}
	win := s.win
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
		return nil
	}
	rowLen := w * 4
	off := (win.Y+y)*s.stride + (win.X+x)*4
	for i := 0; i < h; i++ {
		copy(s.mapped[off:off+rowLen], s.shadow[off:off+rowLen])
		off += s.stride
	}
	return nil
}
