//go:build !linux

package console

import (
	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

const (
	ModeText     = 0x00
	ModeGraphics = 0x01
)

func Mode(fd uintptr) (int, error) {
	return 0, errors.New(consts.ErrPlatformNotSupported)
}

func SetMode(fd uintptr, mode int) error {
	return errors.New(consts.ErrPlatformNotSupported)
}
