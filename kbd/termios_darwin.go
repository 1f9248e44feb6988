//go:build darwin

package kbd

import "golang.org/x/sys/unix"

// TIOCSETAF applies the attributes after flushing unread input.
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETAF
)
