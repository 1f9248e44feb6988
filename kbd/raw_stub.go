//go:build !linux && !darwin

package kbd

import (
	"os"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

type Raw struct {
	f      *os.File
	active bool
}

func NewRaw(f *os.File) *Raw { return &Raw{f: f} }

func (r *Raw) Enter() error { return errors.New(consts.ErrPlatformNotSupported) }

func (r *Raw) Restore() error { return errors.New(consts.ErrPlatformNotSupported) }

func (r *Raw) Active() bool { return r != nil && r.active }
