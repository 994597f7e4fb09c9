package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so that callers can branch on its cause.
type Kind string

const (
	// KindConfiguration marks missing or invalid settings (asset root, DSN, driver).
	KindConfiguration Kind = "configuration"
	// KindUpstream marks failures of an external dependency (database, object store, selector).
	KindUpstream Kind = "upstream"
	// KindValidation marks malformed input.
	KindValidation Kind = "validation"
)

// Error is an error tagged with its Kind and the operation that produced it.
type Error struct {
	Kind Kind
	// Op names the operation, e.g. "puzzles.select". It is not part of the message.
	Op  string
	Err error
}

// Error returns the message of the wrapped error unchanged.
func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind) + " error"
	}
	return e.Err.Error()
}

// Unwrap implements the errors unwrapping interface.
func (e *Error) Unwrap() error {
	return e.Err
}

// New tags err with the given kind. A nil err yields nil.
// An already tagged error keeps its original kind.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Configuration tags err as a configuration error.
func Configuration(op string, err error) error {
	return New(KindConfiguration, op, err)
}

// Upstream tags err as an upstream dependency error.
func Upstream(op string, err error) error {
	return New(KindUpstream, op, err)
}

// Validation tags err as a validation error.
func Validation(op string, err error) error {
	return New(KindValidation, op, err)
}

// Validationf creates a validation error from a format string.
func Validationf(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err. Untagged errors count as upstream failures.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindUpstream
}

// OpOf returns the operation recorded on err, if any.
func OpOf(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Op
	}
	return ""
}
