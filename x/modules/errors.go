package modules

import (
	"github.com/iov-one/quorum/errors"
)

// error codes 1120-1129 are reserved for the modules extension
var (
	// ErrInvalidModule is returned for the zero or sentinel identity,
	// the engine identity, and for duplicated modules.
	ErrInvalidModule = errors.Register(1120, "invalid module")

	// ErrPredecessorMismatch is returned when the supplied predecessor
	// does not directly precede the module in list order.
	ErrPredecessorMismatch = errors.Register(1121, "module predecessor mismatch")
)
