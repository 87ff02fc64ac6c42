package platemap

import (
	"context"
	"errors"
	"strings"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines plate-mapping error kinds.
type ErrorKind string

const (
	KindHeaderNotFound ErrorKind = "header_not_found"
	KindFieldUnmatched ErrorKind = "field_unmatched"
	KindValidation     ErrorKind = "validation"
	KindNotFound       ErrorKind = "not_found"
	KindCanceled       ErrorKind = "canceled"
	KindInternal       ErrorKind = "internal"
)

// PlateError wraps errors with a kind. Fields carries the canonical field
// names involved when the kind is field_unmatched.
type PlateError struct {
	Kind   ErrorKind
	Msg    string
	Fields []string
	Err    error
}

func (e *PlateError) Error() string {
	msg := e.Msg
	if len(e.Fields) > 0 {
		msg = msg + ": " + strings.Join(e.Fields, ", ")
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *PlateError) Unwrap() error {
	return e.Err
}

// NewError creates a new plate-mapping error.
func NewError(kind ErrorKind, msg string, err error) *PlateError {
	return &PlateError{Kind: kind, Msg: msg, Err: err}
}

// NewFieldError creates a field_unmatched error naming the unresolved fields.
func NewFieldError(msg string, fields []string) *PlateError {
	return &PlateError{Kind: KindFieldUnmatched, Msg: msg, Fields: fields}
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindInternal
	msg := err.Error()

	var plateErr *PlateError
	if errors.As(err, &plateErr) {
		kind = plateErr.Kind
		msg = plateErr.Error()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = KindCanceled
	}

	switch kind {
	case KindHeaderNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode("header_not_found")
	case KindFieldUnmatched:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("field_unmatched")
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode("not_found")
	case KindCanceled:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("canceled")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}

// KindFromError maps an error to its plate-mapping error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var plateErr *PlateError
	if errors.As(err, &plateErr) {
		return plateErr.Kind
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}

	return KindInternal
}
