//go:build !linux

package fbdev

import (
	"os"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

func GetFixScreenInfo(f *os.File) (*FixScreenInfo, error) {
	return nil, errors.New(consts.ErrPlatformNotSupported)
}

func GetVarScreenInfo(f *os.File) (*VarScreenInfo, error) {
	return nil, errors.New(consts.ErrPlatformNotSupported)
}

func Mmap(f *os.File, length int) ([]byte, error) {
	return nil, errors.New(consts.ErrPlatformNotSupported)
}

func Munmap(data []byte) error {
	return errors.New(consts.ErrPlatformNotSupported)
}
