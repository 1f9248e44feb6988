//go:build linux

package fbdev

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

func GetFixScreenInfo(f *os.File) (*FixScreenInfo, error) {
	if f == nil {
		return nil, errors.New(consts.ErrNilParam)
	}
	info := &FixScreenInfo{}
	if err := ioctl(f.Fd(), FBIOGET_FSCREENINFO, unsafe.Pointer(info)); err != nil {
		return nil, err
	}
	return info, nil
}

func GetVarScreenInfo(f *os.File) (*VarScreenInfo, error) {
	if f == nil {
		return nil, errors.New(consts.ErrNilParam)
	}
	info := &VarScreenInfo{}
	if err := ioctl(f.Fd(), FBIOGET_VSCREENINFO, unsafe.Pointer(info)); err != nil {
		return nil, err
	}
	return info, nil
}

// Mmap maps length bytes of the device read-write and shared.
func Mmap(f *os.File, length int) ([]byte, error) {
	if f == nil {
		return nil, errors.New(consts.ErrNilParam)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.New(err)
	}
	return data, nil
}

func Munmap(data []byte) error {
	if data == nil {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return errors.New(err)
	}
	return nil
}

func ioctl(fd uintptr, cmd uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(arg))
	if errno != 0 {
		return errors.New(os.NewSyscallError(`ioctl`, errno))
	}
	return nil
}
