package apperrors

import "errors"

// appError is the concrete Error implementation. Derivation methods copy
// the receiver instead of mutating it.
type appError struct {
	msg        string
	base       error
	wrapped    []error
	statuscode int
}

// New creates a root-level error with the given message.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

// Unwrap returns the base error so that errors.Is can walk the chain.
func (e *appError) Unwrap() error {
	return e.base
}

// UnwrapAll returns every wrapped cause in the order it was attached.
func (e *appError) UnwrapAll() []error {
	return e.wrapped
}

// New derives a fresh error that keeps the receiver as its base and
// inherits its status code. The new error carries no wrapped causes.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		statuscode: e.statuscode,
	}
}

// Msg derives an error with a new message and the receiver wrapped as a cause.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, e.wrapped...),
		statuscode: e.statuscode,
	}
}

// MsgErr derives an error with a new message, wrapping the receiver and
// any additional causes.
func (e *appError) MsgErr(msg string, errs ...error) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// Err derives an error that keeps the receiver's message and wraps the
// additional causes.
func (e *appError) Err(errs ...error) Error {
	return &appError{
		msg:        e.msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// SetStatusCode derives an error with the given HTTP status code.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

// StatusCode returns the HTTP status code carried by the error.
func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is reports whether target matches the base error or any wrapped cause.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrapped {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
