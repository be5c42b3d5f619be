package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so Is matches markErr while keeping err's message and stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches both wrapped causes and marks added with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// WithDetail attaches a user-facing hint that survives wrapping.
func WithDetail(err error, detail string) error {
	if err == nil {
		return nil
	}
	return cr.WithDetail(err, detail)
}

// Details returns the hints attached with WithDetail, outermost first.
func Details(err error) []string {
	return cr.GetAllDetails(err)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}
