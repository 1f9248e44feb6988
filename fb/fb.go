// Package fb drives a memory-mapped Linux framebuffer device. It covers
// session acquisition and teardown, the drawing window, the shadow buffer
// compositor and the pixel format of the device. Drawing itself lives in
// the gfx package and goes through the Surface interface or the
// draw.Image adapter.
package fb

import "github.com/roman65536/tfblib/internal/consts"

// Failure variants. Errors returned by this package carry one of these
// and the underlying cause; both match with errors.Is.
var (
	ErrDeviceOpen      = consts.ErrDeviceOpen
	ErrDeviceQuery     = consts.ErrDeviceQuery
	ErrUnsupportedMode = consts.ErrUnsupportedMode
	ErrPixelFormat     = consts.ErrPixelFormat
	ErrTerminalOpen    = consts.ErrTerminalOpen
	ErrTerminalMode    = consts.ErrTerminalMode
	ErrMap             = consts.ErrMap
	ErrOutOfMemory     = consts.ErrOutOfMemory
	ErrInvalidWindow   = consts.ErrInvalidWindow
	ErrSessionBusy     = consts.ErrSessionBusy
	ErrNotAcquired     = consts.ErrNotAcquired
)

// Surface is the pixel contract consumed by drawing routines: the device
// geometry, the channel layout and the active window, plus the buffer
// that drawing writes to. Pixels are 32-bit values stored little-endian;
// a pixel at device coordinates (x, y) starts at byte y*Stride()+x*4.
type Surface interface {
	Width() int
	Height() int
	Stride() int
	Format() PixFmt
	Window() Window
	Pixels() []byte
}
