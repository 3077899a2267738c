package owners

import (
	"github.com/iov-one/quorum/errors"
)

// error codes 1100-1109 are reserved for the owners extension
var (
	// ErrAlreadyInitialized is returned when setup runs on a registry
	// that holds owners already.
	ErrAlreadyInitialized = errors.Register(1100, "registry already initialized")

	// ErrInvalidThreshold is returned when a threshold is outside of
	// the [1, ownerCount] range.
	ErrInvalidThreshold = errors.Register(1101, "invalid threshold")

	// ErrInvalidOwner is returned for the zero, sentinel or engine
	// identity, and for duplicated owners.
	ErrInvalidOwner = errors.Register(1102, "invalid owner")

	// ErrQuorumUnreachable is returned when removing an owner would
	// leave fewer owners than the requested threshold.
	ErrQuorumUnreachable = errors.Register(1103, "quorum unreachable")

	// ErrPredecessorMismatch is returned when the supplied predecessor
	// does not directly precede the owner in list order.
	ErrPredecessorMismatch = errors.Register(1104, "predecessor mismatch")
)
