package consts

import (
	"errors"
)

// Error taxonomy. Failure sites wrap these together with the underlying
// cause so callers can match either with errors.Is.
var (
	ErrDeviceOpen       = errors.New(`framebuffer device open failed`)
	ErrDeviceQuery      = errors.New(`framebuffer device query failed`)
	ErrUnsupportedMode  = errors.New(`unsupported framebuffer mode`)
	ErrPixelFormat      = errors.New(`unsupported pixel format`)
	ErrTerminalOpen     = errors.New(`terminal open failed`)
	ErrTerminalMode     = errors.New(`terminal mode switch failed`)
	ErrMap              = errors.New(`framebuffer mapping failed`)
	ErrOutOfMemory      = errors.New(`shadow buffer allocation failed`)
	ErrInvalidWindow    = errors.New(`window exceeds screen bounds`)
	ErrSessionBusy      = errors.New(`framebuffer session already acquired`)
	ErrNotAcquired      = errors.New(`no framebuffer session acquired`)
	ErrWrongMode        = errors.New(`invalid keyboard mode transition`)
	ErrModeQuery        = errors.New(`terminal attribute query failed`)
	ErrModeSet          = errors.New(`terminal attribute update failed`)
	ErrUnknownSequence  = errors.New(`unrecognized escape sequence`)
	ErrSequenceOverflow = errors.New(`escape sequence too long`)

	ErrFontExists  = errors.New(`font name already registered`)
	ErrFontUnknown = errors.New(`font not registered`)

	ErrNilReceiver          = errors.New(`nil receiver`)
	ErrNilParam             = errors.New(`nil parameter`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
)

const (
	LibraryName = `tfblib`

	// DefaultFBDevice is used when no device path is given and the
	// FBDeviceEnv environment variable is unset.
	DefaultFBDevice = `/dev/fb0`

	// DefaultTTYDevice is the fallback when the controlling terminal
	// of the process cannot be determined.
	DefaultTTYDevice = `/dev/tty`

	FBDeviceEnv = `FRAMEBUFFER`
)
