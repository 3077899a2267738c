package engine

import (
	"github.com/iov-one/quorum/errors"
)

// error codes 1130-1139 are reserved for the engine extension
var (
	// ErrUnknownTransaction is returned when the referenced transaction
	// id was never allocated.
	ErrUnknownTransaction = errors.Register(1130, "unknown transaction")

	// ErrAlreadyApproved is returned when an owner approves the same
	// transaction twice.
	ErrAlreadyApproved = errors.Register(1131, "already approved")

	// ErrAlreadyExecuted is returned when a transaction that already
	// executed is approved, revoked or executed again.
	ErrAlreadyExecuted = errors.Register(1132, "already executed")

	// ErrNotApproved is returned when revoking an approval that was
	// never given.
	ErrNotApproved = errors.Register(1133, "not approved")

	// ErrGuardRejected is returned when the guard hook vetoes an
	// execution. The whole call aborts with no state change.
	ErrGuardRejected = errors.Register(1134, "guard rejected")

	// ErrInsufficientBudget is returned before any external call is
	// made when the remaining resource budget cannot safely cover the
	// requested forwarding.
	ErrInsufficientBudget = errors.Register(1135, "insufficient resource budget")

	// ErrFeeSettlement is returned when the relayer fee transfer after
	// a direct execution does not go through.
	ErrFeeSettlement = errors.Register(1136, "fee settlement failed")
)
