package fb

import (
	"log/slog"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

type Option interface {
	ApplyOption(s *Session) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Session) error

func (o OptFunc) ApplyOption(s *Session) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Session) error {
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDevice overrides the framebuffer device path. An empty path keeps
// the default resolution (FRAMEBUFFER environment variable, then
// /dev/fb0).
func SetDevice(path string) Option {
	return OptFunc(func(s *Session) error {
		if len(path) > 0 {
			s.devPath = path
		}
		return nil
	})
}

// SetTerminal overrides the terminal device used for the console mode
// switch. An empty path keeps the default resolution (controlling
// terminal of the process, then /dev/tty).
func SetTerminal(path string) Option {
	return OptFunc(func(s *Session) error {
		if len(path) > 0 {
			s.ttyPath = path
		}
		return nil
	})
}

// SetSLogger routes the session's log records to h, the default slog
// handler when h is nil. Records carry a `lib` attribute so they stay
// identifiable in a shared handler.
func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(s *Session) error {
		if !enable {
			s.logger = nil
			return nil
		}
		logger := slog.Default()
		if h != nil {
			logger = slog.New(h)
		}
		s.logger = logger.With(slog.String(`lib`, consts.LibraryName))
		return nil
	})
}

var (
	// ShadowBuffer makes drawing go to a heap buffer instead of the
	// mapped device memory; FlushWindow copies it to the device.
	ShadowBuffer Option = shadowBuffer
	// KeepConsoleMode skips opening the terminal and switching the
	// console to graphics mode.
	KeepConsoleMode Option = keepConsoleMode
)

var shadowBuffer Option = OptFunc(func(s *Session) error { s.shadowed = true; return nil })
var keepConsoleMode Option = OptFunc(func(s *Session) error { s.keepConsole = true; return nil })
