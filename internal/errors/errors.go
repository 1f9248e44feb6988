package errors

import (
	errorsGo "github.com/go-errors/errors"
)

type Error = errorsGo.Error

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	} else {
		return nil
	}
}

// Tag pairs a sentinel from the error taxonomy with the underlying cause.
// Is matches both.
func Tag(sentinel, cause error) error {
	switch {
	case sentinel == nil && cause == nil:
		return nil
	case sentinel == nil:
		return New(cause)
	case cause == nil:
		return New(sentinel)
	}
	return Join(sentinel, cause)
}
