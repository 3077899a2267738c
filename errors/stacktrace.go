package errors

import (
	"github.com/pkg/errors"
)

// stackTracer is implemented by pkg/errors instances that carry a recorded
// stack trace.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the stack trace attached to given error or nil if no
// trace information is present in the whole causer chain.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
