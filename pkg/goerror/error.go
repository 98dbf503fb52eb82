// Package goerror classifies errors into a small set of types and codes so
// callers can render them consistently, for example as HTTP responses.
package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested item could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidType indicates that a value has a different type than requested.
	ErrInvalidType = errors.New("invalid type")
)

// Type classifies errors into high-level buckets.
type Type int

const (
	// TypeServer represents failures that are not caused by the caller.
	TypeServer Type = iota
	// TypeBusiness represents business rule violations.
	TypeBusiness
	// TypeValidation represents input validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to status codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidInput indicates input that was decoded but is not valid.
	CodeInvalidInput
	// CodeNotFound indicates a missing item.
	CodeNotFound
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error carrying a message, a type, a code and, for
// validation failures, a field to message map.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	default:
		return "Internal error"
	}
}

// String returns a verbose representation of the error for logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Fields: %v, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.fields,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns a copy of the field to message map, if any.
func (e *Error) Fields() map[string]string {
	if e.fields == nil {
		return nil
	}

	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newError(err error, msg string, et Type, code Code) *Error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error wrapping err.
func NewServer(err error) error {
	return newError(err, "Internal server error", TypeServer, CodeInternal)
}

// NewNotFound creates a business error for a missing item. cause should
// wrap ErrNotFound; a nil cause uses ErrNotFound itself.
func NewNotFound(cause error, msg string) error {
	if cause == nil {
		cause = ErrNotFound
	}
	return newError(fmt.Errorf("%w: %s", cause, msg), msg, TypeBusiness, CodeNotFound)
}

// NewInvalidFields creates a validation error from a field to message map.
func NewInvalidFields(fields map[string]string) error {
	e := newError(nil, "Validation error", TypeValidation, CodeInvalidInput)
	if len(fields) > 0 {
		e.fields = make(map[string]string, len(fields))
		for k, v := range fields {
			e.fields[k] = v
		}
	}

	return e
}

// NewInvalidType creates a business error for a value of the wrong type.
// cause should wrap ErrInvalidType; a nil cause uses ErrInvalidType itself.
func NewInvalidType(cause error, msg string) error {
	if cause == nil {
		cause = ErrInvalidType
	}
	return newError(fmt.Errorf("%w: %s", cause, msg), msg, TypeBusiness, CodeInternal)
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
