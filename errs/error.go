package errs

import (
	"errors"
	"fmt"
)

// Application error codes. They describe the kind of failure in a transport
// agnostic way; the http package decides how each code renders.
const (
	// ECONFLICT means a uniqueness rule was violated, e.g. a duplicate like.
	ECONFLICT = "conflict"
	// EINTERNAL is any failure the caller can do nothing about.
	EINTERNAL = "internal"
	// EINVALID means the provided input failed validation.
	EINVALID = "invalid"
	// ENOTFOUND means the addressed resource does not exist.
	ENOTFOUND = "not_found"
	// EUNAUTHORIZED means the caller is not allowed to touch the resource.
	EUNAUTHORIZED = "unauthorized"
)

// Error is an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("chirper error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of any error. A nil error has no code, an error
// that is not an *Error is EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of any error. Non-application errors map
// to a generic message so that internals never leak to clients.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
