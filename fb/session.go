package fb

import (
	"log/slog"
	"os"
	"sync"

	xfont "golang.org/x/image/font"

	"github.com/roman65536/tfblib/font"
	"github.com/roman65536/tfblib/internal"
	"github.com/roman65536/tfblib/internal/console"
	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
	"github.com/roman65536/tfblib/internal/fbdev"
	"github.com/roman65536/tfblib/internal/logx"
	"github.com/roman65536/tfblib/internal/ttydev"
)

// Session owns an acquired framebuffer device: the device handle, the
// mapped memory, the optional shadow buffer, the screen geometry and the
// active drawing window. At most one Session is acquired per process at
// a time; Acquire fails with ErrSessionBusy until Release.
//
// A Session is not safe for concurrent use.
type Session struct {
	devPath     string
	ttyPath     string
	shadowed    bool
	keepConsole bool

	dev     *os.File
	tty     *os.File
	savedKD int

	mapped []byte
	shadow []byte

	w      int
	h      int
	stride int
	baseX  int
	baseY  int
	format PixFmt
	win    Window

	font xfont.Face

	closer   internal.Closer
	logger   *slog.Logger
	released bool
}

var _ Surface = (*Session)(nil)
var _ logx.LoggerProvider = (*Session)(nil)

var (
	acquireMu sync.Mutex
	active    *Session
)

func reserve(s *Session) error {
	acquireMu.Lock()
	defer acquireMu.Unlock()
	if active != nil {
		return errors.New(consts.ErrSessionBusy)
	}
	active = s
	return nil
}

func unreserve(s *Session) {
	acquireMu.Lock()
	defer acquireMu.Unlock()
	if active == s {
		active = nil
	}
}

// Acquire opens the framebuffer device, validates its mode, maps its
// memory, switches the console to graphics mode unless opted out, and
// establishes a full-screen drawing window. On any failure everything
// already acquired is torn down before the error is returned.
func Acquire(opts ...Option) (_ *Session, rerr error) {
	s := &Session{
		devPath: defaultDevice(),
		closer:  internal.NewCloser(),
	}
	if err := (Options(opts)).ApplyOption(s); err != nil {
		return nil, err
	}
	if len(s.ttyPath) == 0 {
		tty, err := ttydev.Controlling()
		if err != nil {
			tty = consts.DefaultTTYDevice
			logx.Warn(`controlling terminal not resolved`, s, `fallback`, tty, `reason`, err)
		}
		s.ttyPath = tty
	}
	if err := reserve(s); err != nil {
		return nil, err
	}
	defer func() {
		if rerr != nil {
			_ = s.Release()
		}
	}()

	dev, err := os.OpenFile(s.devPath, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.Tag(consts.ErrDeviceOpen, err)
	}
	s.dev = dev
	s.closer.AddClosers(dev)
	logx.Debug(`framebuffer device opened`, s, `path`, s.devPath)

	finfo, err := fbdev.GetFixScreenInfo(dev)
	if err != nil {
		return nil, errors.Tag(consts.ErrDeviceQuery, err)
	}
	vinfo, err := fbdev.GetVarScreenInfo(dev)
	if err != nil {
		return nil, errors.Tag(consts.ErrDeviceQuery, err)
	}
	s.stride = int(finfo.LineLength)
	s.w = int(vinfo.XRes)
	s.h = int(vinfo.YRes)
	s.baseX = int(vinfo.XOffset)
	s.baseY = int(vinfo.YOffset)
	size := s.stride * s.h
	if s.stride == 0 || s.w == 0 || s.h == 0 || size <= 0 {
		return nil, errors.Tag(consts.ErrDeviceQuery,
			errors.Errorf(`device reports %dx%d pixels with %d byte stride`, s.w, s.h, s.stride))
	}

	if vinfo.BitsPerPixel != 32 {
		return nil, errors.Tag(consts.ErrUnsupportedMode,
			errors.Errorf(`%d bits per pixel, only 32 bpp is supported`, vinfo.BitsPerPixel))
	}

	format, err := ResolveFormat(vinfo.Red, vinfo.Green, vinfo.Blue)
	if err != nil {
		return nil, err
	}
	s.format = format

	if !s.keepConsole {
		tty, err := os.OpenFile(s.ttyPath, os.O_RDWR, 0)
		if err != nil {
			return nil, errors.Tag(consts.ErrTerminalOpen, err)
		}
		s.tty = tty
		s.closer.AddClosers(tty)
		mode, err := console.Mode(tty.Fd())
		if err != nil {
			return nil, errors.Tag(consts.ErrTerminalMode, err)
		}
		if err := console.SetMode(tty.Fd(), console.ModeGraphics); err != nil {
			return nil, errors.Tag(consts.ErrTerminalMode, err)
		}
		s.savedKD = mode
		s.closer.OnClose(func() error { return console.SetMode(tty.Fd(), s.savedKD) })
		logx.Debug(`console switched to graphics mode`, s, `tty`, s.ttyPath)
	}

	mapped, err := fbdev.Mmap(dev, size)
	if err != nil {
		return nil, errors.Tag(consts.ErrMap, err)
	}
	s.mapped = mapped
	s.closer.OnClose(func() error {
		m := s.mapped
		s.mapped = nil
		return fbdev.Munmap(m)
	})
	logx.Debug(`framebuffer mapped`, s, `bytes`, size)

	if s.shadowed {
		s.shadow, err = allocShadow(size)
		if err != nil {
			return nil, err
		}
	} else {
		s.shadow = mapped
	}

	if err := s.SetWindow(0, 0, s.w, s.h); err != nil {
		return nil, errors.Tag(consts.ErrUnsupportedMode, err)
	}

	if face, ok := font.Default(); ok {
		s.font = face
	}

	logx.Info(`framebuffer session acquired`, s,
		`width`, s.w, `height`, s.h, `stride`, s.stride, `shadowed`, s.shadowed)
	return s, nil
}

// allocShadow turns the makeslice panic for absurd sizes into an error.
func allocShadow(size int) (buf []byte, rerr error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			rerr = errors.Tag(consts.ErrOutOfMemory, errors.Errorf(`%v`, r))
		}
	}()
	return make([]byte, size), nil
}

// Release tears the session down in reverse order of acquisition:
// unmap, restore the console mode, close the terminal, close the
// device. Safe to call more than once.
func (s *Session) Release() error {
	if s == nil || s.released {
		return nil
	}
	s.released = true
	var err error
	if s.closer != nil {
		err = s.closer.Close()
	}
	s.mapped = nil
	s.shadow = nil
	s.dev = nil
	s.tty = nil
	s.font = nil
	unreserve(s)
	if err != nil {
		return logx.Err(errors.New(err), s, slog.LevelError)
	}
	return nil
}

func defaultDevice() string {
	if dev := os.Getenv(consts.FBDeviceEnv); len(dev) > 0 {
		return dev
	}
	return consts.DefaultFBDevice
}

// Width returns the horizontal resolution in pixels.
func (s *Session) Width() int {
	if s == nil {
		return 0
	}
	return s.w
}

// Height returns the vertical resolution in pixels.
func (s *Session) Height() int {
	if s == nil {
		return 0
	}
	return s.h
}

// Stride returns the length of a scanline in bytes.
func (s *Session) Stride() int {
	if s == nil {
		return 0
	}
	return s.stride
}

// Format returns the pixel format of the device.
func (s *Session) Format() PixFmt {
	if s == nil {
		return PixFmt{}
	}
	return s.format
}

// Window returns the active drawing window.
func (s *Session) Window() Window {
	if s == nil {
		return Window{}
	}
	return s.win
}

// Pixels returns the buffer drawing writes to: the shadow buffer when
// one was requested, the mapped device memory otherwise. Nil after
// Release.
func (s *Session) Pixels() []byte {
	if s == nil {
		return nil
	}
	return s.shadow
}

// Shadowed reports whether drawing goes to a distinct shadow buffer.
func (s *Session) Shadowed() bool {
	if s == nil {
		return false
	}
	return s.shadowed
}

// Font returns the session's default font face, nil if none.
func (s *Session) Font() xfont.Face {
	if s == nil {
		return nil
	}
	return s.font
}

// SetFont replaces the session's default font face.
func (s *Session) SetFont(face xfont.Face) {
	if s == nil {
		return
	}
	s.font = face
}

func (s *Session) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.logger
}
