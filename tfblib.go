// Package tfblib drives the Linux framebuffer through one process-wide
// session. Everything here forwards to an implicit fb.Session; use the
// fb, gfx, kbd and font packages directly for explicit control.
package tfblib

import (
	"os"

	"github.com/roman65536/tfblib/fb"
	"github.com/roman65536/tfblib/font"
	"github.com/roman65536/tfblib/gfx"
	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
	"github.com/roman65536/tfblib/kbd"
)

var (
	sessionActive *fb.Session
	rawActive     *kbd.Raw
	keyDecoder    *kbd.Decoder
)

// AcquireFB opens and maps the framebuffer and makes it the package's
// active session. Options select the device, the terminal, the shadow
// buffer and console mode handling; see the fb package.
func AcquireFB(opts ...fb.Option) error {
	if sessionActive != nil {
		return errors.New(consts.ErrSessionBusy)
	}
	s, err := fb.Acquire(opts...)
	if err != nil {
		return err
	}
	sessionActive = s
	return nil
}

// ReleaseFB ...
func ReleaseFB() error {
	if sessionActive == nil {
		return nil
	}
	err := sessionActive.Release()
	sessionActive = nil
	return err
}

// Session ...
func Session() (*fb.Session, error) {
	if sessionActive == nil {
		return nil, errors.New(consts.ErrNotAcquired)
	}
	return sessionActive, nil
}

// SetWindow ...
func SetWindow(x, y, w, h int) error {
	s, err := Session()
	if err != nil {
		return err
	}
	return s.SetWindow(x, y, w, h)
}

// SetCenterWindow sets a window of the given size centered on screen.
func SetCenterWindow(w, h int) error {
	s, err := Session()
	if err != nil {
		return err
	}
	return s.SetWindow(s.Width()/2-w/2, s.Height()/2-h/2, w, h)
}

// FlushWindow ...
func FlushWindow() error {
	s, err := Session()
	if err != nil {
		return err
	}
	return s.FlushWindow()
}

// FlushRect ...
func FlushRect(x, y, w, h int) error {
	s, err := Session()
	if err != nil {
		return err
	}
	return s.FlushRect(x, y, w, h)
}

// ScreenWidth ...
func ScreenWidth() int { return sessionActive.Width() }

// ScreenHeight ...
func ScreenHeight() int { return sessionActive.Height() }

// WinWidth ...
func WinWidth() int { return sessionActive.Window().W }

// WinHeight ...
func WinHeight() int { return sessionActive.Window().H }

// SetKbRawMode puts the controlling terminal's input into raw mode so
// keypresses arrive unbuffered and unechoed.
func SetKbRawMode() error {
	if rawActive == nil {
		rawActive = kbd.NewRaw(os.Stdin)
	}
	return rawActive.Enter()
}

// RestoreKbMode ...
func RestoreKbMode() error {
	if rawActive == nil {
		return errors.Tag(consts.ErrWrongMode, errors.New(`raw mode not active`))
	}
	return rawActive.Restore()
}

// ReadKeypress blocks for one keypress on standard input and decodes
// it; see kbd.Decoder for the failure variants.
func ReadKeypress() (kbd.Key, error) {
	if keyDecoder == nil {
		keyDecoder = kbd.NewDecoder(os.Stdin)
	}
	return keyDecoder.ReadKey()
}

// FnKeyNum ...
func FnKeyNum(k kbd.Key) int { return kbd.FnKeyNum(k) }

// ClearScreen ...
func ClearScreen(c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.ClearScreen(s, c)
	return nil
}

// ClearWin ...
func ClearWin(c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.Clear(s, c)
	return nil
}

// DrawPixel ...
func DrawPixel(x, y int, c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.PutPixel(s, x, y, c)
	return nil
}

// DrawHLine ...
func DrawHLine(x, y, w int, c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.DrawHLine(s, x, y, w, c)
	return nil
}

// DrawVLine ...
func DrawVLine(x, y, h int, c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.DrawVLine(s, x, y, h, c)
	return nil
}

// DrawLine ...
func DrawLine(x0, y0, x1, y1 int, c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.DrawLine(s, x0, y0, x1, y1, c)
	return nil
}

// DrawRect ...
func DrawRect(x, y, w, h int, c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.DrawRect(s, x, y, w, h, c)
	return nil
}

// FillRect ...
func FillRect(x, y, w, h int, c gfx.RGB) error {
	s, err := Session()
	if err != nil {
		return err
	}
	gfx.FillRect(s, x, y, w, h, c)
	return nil
}

// DrawString renders text with the session's font, top-left corner of
// the first glyph at the window-relative (x, y).
func DrawString(x, y int, c gfx.RGB, text string) error {
	s, err := Session()
	if err != nil {
		return err
	}
	face := s.Font()
	if face == nil {
		return errors.New(consts.ErrFontUnknown)
	}
	gfx.DrawString(s.Image(), face, c, x, y, text)
	return nil
}

// DrawCenterString renders text horizontally centered in the window.
func DrawCenterString(y int, c gfx.RGB, text string) error {
	s, err := Session()
	if err != nil {
		return err
	}
	face := s.Font()
	if face == nil {
		return errors.New(consts.ErrFontUnknown)
	}
	gfx.CenterString(s.Image(), face, c, y, text)
	return nil
}

// SetDefaultFont makes the named registered font the registry default
// and the active session's font.
func SetDefaultFont(name string) error {
	if err := font.SetDefault(name); err != nil {
		return err
	}
	if sessionActive != nil {
		if face, ok := font.Default(); ok {
			sessionActive.SetFont(face)
		}
	}
	return nil
}
