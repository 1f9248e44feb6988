//go:build linux

// Package console switches a Linux virtual console between text and
// graphics mode so the cursor and console output stop overdrawing the
// framebuffer.
package console

import (
	"golang.org/x/sys/unix"

	"github.com/roman65536/tfblib/internal/errors"
)

// KD ioctls and console modes from <linux/kd.h>. x/sys/unix does not
// export the KD set, so the numbers are spelled out here.
const (
	KDGETMODE = 0x4b3b
	KDSETMODE = 0x4b3a

	ModeText     = 0x00
	ModeGraphics = 0x01
)

// Mode returns the current KD mode of the console fd.
func Mode(fd uintptr) (int, error) {
	mode, err := unix.IoctlGetInt(int(fd), KDGETMODE)
	if err != nil {
		return 0, errors.New(err)
	}
	return mode, nil
}

// SetMode switches the console fd to the given KD mode.
func SetMode(fd uintptr, mode int) error {
	if err := unix.IoctlSetInt(int(fd), KDSETMODE, mode); err != nil {
		return errors.New(err)
	}
	return nil
}
