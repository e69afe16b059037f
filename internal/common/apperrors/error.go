// Package apperrors provides status-coded application errors with support
// for error chaining. Errors created here implement the standard error
// interface and cooperate with errors.Is / errors.As, while carrying an
// HTTP status code and an optional chain of wrapped causes.
package apperrors

// Error is the interface implemented by all application errors. Methods
// that derive a new error never mutate the receiver, so package-level
// sentinel errors are safe to share.
type Error interface {
	error
	Unwrap() error // base error, for errors.Is / errors.As

	New(msg string) Error                  // fresh error using the receiver as template
	Msg(msg string) Error                  // new message, receiver wrapped as cause
	MsgErr(msg string, err ...error) Error // new message, receiver plus extra causes wrapped
	Err(err ...error) Error                // receiver's message, extra causes wrapped
	SetStatusCode(int) Error               // derived error with the given HTTP status code
	StatusCode() int                       // HTTP status code, 0 if unset
	UnwrapAll() []error                    // every wrapped cause, in order
}
