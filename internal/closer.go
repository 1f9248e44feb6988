package internal

import (
	"errors"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

// Closer runs registered teardown steps in reverse order of registration.
type Closer interface {
	Close() error
	OnClose(onClose func() error)
	AddClosers(closers ...interface{ Close() error })
}

var _ Closer = (*lifoCloser)(nil)

type lifoCloser struct {
	onCloseFuncs []func() error
}

func NewCloser() Closer { return newLifoCloser() }

func newLifoCloser() *lifoCloser {
	closer := &lifoCloser{}
	runtime.SetFinalizer(closer, func(cl *lifoCloser) { _ = cl.Close() })
	return closer
}

// Close runs the steps last to first. Steps run once; a second Close is a
// no-op.
func (c *lifoCloser) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.onCloseFuncs) - 1; i > -1; i-- {
		if onCloseFunc := c.onCloseFuncs[i]; onCloseFunc != nil {
			if err := onCloseFunc(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	c.onCloseFuncs = nil
	if err := errors.Join(errs...); err != nil {
		return errorsGo.New(err)
	}
	return nil
}

func (c *lifoCloser) OnClose(onClose func() error) {
	if c == nil || onClose == nil {
		return
	}
	c.onCloseFuncs = append(c.onCloseFuncs, onClose)
}

func (c *lifoCloser) AddClosers(closers ...interface{ Close() error }) {
	if c == nil {
		return
	}
	for _, cl := range closers {
		cl := cl
		if cl == nil {
			continue
		}
		c.OnClose(cl.Close)
	}
}
