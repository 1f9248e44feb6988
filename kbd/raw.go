//go:build linux || darwin

package kbd

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

// Raw toggles raw, unechoed input on a terminal. At most one attribute
// snapshot is outstanding: Enter fails while raw mode is active and
// Restore fails while it is not.
type Raw struct {
	f      *os.File
	saved  unix.Termios
	active bool
}

// NewRaw returns a controller for the given terminal, usually os.Stdin.
func NewRaw(f *os.File) *Raw { return &Raw{f: f} }

// Enter snapshots the current terminal attributes and applies the raw
// set: no break signal, no parity check, no bit stripping, no software
// flow control, no echo, no line buffering, no extended processing, no
// signal characters. Pending input is discarded.
func (r *Raw) Enter() error {
	if r == nil || r.f == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if r.active {
		return errors.Tag(consts.ErrWrongMode, errors.New(`raw mode already active`))
	}
	attrs, err := unix.IoctlGetTermios(int(r.f.Fd()), ioctlGetTermios)
	if err != nil {
		return errors.Tag(consts.ErrModeQuery, err)
	}
	r.saved = *attrs
	raw := rawAttrs(*attrs)
	if err := unix.IoctlSetTermios(int(r.f.Fd()), ioctlSetTermios, &raw); err != nil {
		return errors.Tag(consts.ErrModeSet, err)
	}
	r.active = true
	return nil
}

// Restore re-applies the attributes snapshotted by Enter, again
// discarding pending input.
func (r *Raw) Restore() error {
	if r == nil || r.f == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if !r.active {
		return errors.Tag(consts.ErrWrongMode, errors.New(`raw mode not active`))
	}
	saved := r.saved
	if err := unix.IoctlSetTermios(int(r.f.Fd()), ioctlSetTermios, &saved); err != nil {
		return errors.Tag(consts.ErrModeSet, err)
	}
	r.active = false
	return nil
}

// Active reports whether raw mode is currently applied.
func (r *Raw) Active() bool { return r != nil && r.active }

func rawAttrs(attrs unix.Termios) unix.Termios {
	attrs.Iflag &^= unix.BRKINT | unix.INPCK | unix.ISTRIP | unix.IXON
	attrs.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	return attrs
}
