package errors

import "github.com/pkg/errors"

// ErrorTracer carries a message plus an underlying error whose stack trace the
// logger can extract.
type ErrorTracer struct {
	Message string
	Err     error
}

// StackTracer is satisfied by errors that carry a pkg/errors stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// TracerFromError wraps an existing error, attaching a stack trace if it does
// not already carry one.
func TracerFromError(err error) *ErrorTracer {
	tracer := &ErrorTracer{Message: err.Error(), Err: err}
	if _, ok := err.(StackTracer); !ok {
		tracer.Err = errors.WithStack(err)
	}
	return tracer
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the underlying error's stack trace, if any.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Err.(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
