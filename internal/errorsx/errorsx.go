package errorsx

import (
	"github.com/pkg/errors"
)

// String useful wrapper for string constants as errors.
type String string

func (t String) Error() string {
	return string(t)
}

// New returns an error that records the stack at the point it was created.
func New(message string) error {
	return errors.New(message)
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Wrap annotates err with message. Returns nil if err is nil.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// WithStack attaches a stack to err without changing its message.
func WithStack(err error) error {
	return errors.WithStack(err)
}

func Must[T any](v T, err error) T {
	if err == nil {
		return v
	}

	panic(err)
}

// Compact returns the first error in the set, if any.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
