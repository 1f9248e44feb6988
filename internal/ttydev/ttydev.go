// Package ttydev resolves the terminal device of the current process.
package ttydev

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/roman65536/tfblib/internal/errors"
)

// Controlling returns the path of the controlling terminal, e.g.
// /dev/tty2 on a virtual console.
func Controlling() (string, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ``, errors.New(err)
	}
	tty, err := proc.Terminal()
	if err != nil {
		return ``, errors.New(err)
	}
	if len(tty) == 0 {
		return ``, errors.New(`process has no controlling terminal`)
	}
	if !strings.HasPrefix(tty, `/`) {
		tty = `/dev/` + tty
	}
	return tty, nil
}
