//go:build linux

package kbd

import "golang.org/x/sys/unix"

// TCSETSF applies the attributes after flushing unread input.
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETSF
)
