package engine

import (
	"context"

	"github.com/iov-one/quorum"
)

// Authenticator resolves the caller identity from the request context.
// The transport establishing that identity (signature checked requests,
// local CLI, tests) is outside the engine.
type Authenticator interface {
	// Identity returns the authenticated caller or nil when the
	// context carries no identity.
	Identity(ctx context.Context) quorum.Address
}

// LedgerExecutor performs the actual state changing call on the
// underlying ledger. It is the outermost trust boundary: the engine
// treats every call as attacker controlled and assumes it may re-enter
// the engine before returning.
type LedgerExecutor interface {
	// Execute performs the call and reports success. It must not
	// panic past the engine; any underlying failure is reported as
	// false.
	Execute(ctx context.Context, kind CallKind, target quorum.Address, value uint64, payload []byte, budget int64) bool

	// CurrentResourceBudget reports the resources still available for
	// forwarding, analogous to remaining gas.
	CurrentResourceBudget() int64
}

// GuardHook intercepts privileged executions for policy enforcement.
// It applies to every execution path: quorum, direct and module
// triggered.
type GuardHook interface {
	// PreCheck may veto the execution. Any error aborts the whole
	// call with no state change.
	PreCheck(ctx context.Context, tx *Transaction, caller quorum.Address) error

	// PostCheck observes the outcome. It runs after the executed flag
	// and events are settled and cannot veto anymore.
	PostCheck(ctx context.Context, digest []byte, success bool)
}

// FeeSettlement pays out relayer compensation after a direct execution.
type FeeSettlement interface {
	// Transfer moves amount of the given token (nil for the native
	// unit) to the receiver and reports success.
	Transfer(ctx context.Context, token quorum.Address, amount uint64, receiver quorum.Address) bool
}

// EventKind names an engine event.
type EventKind string

const (
	EventSubmitted       EventKind = "transaction_submitted"
	EventApproved        EventKind = "transaction_approved"
	EventRevoked         EventKind = "approval_revoked"
	EventExecuted        EventKind = "transaction_executed"
	EventExecutionFailed EventKind = "execution_failed"
	EventOwnerAdded      EventKind = "owner_added"
	EventOwnerRemoved    EventKind = "owner_removed"
	EventOwnerSwapped    EventKind = "owner_swapped"
	EventThresholdChange EventKind = "threshold_changed"
	EventModuleEnabled   EventKind = "module_enabled"
	EventModuleDisabled  EventKind = "module_disabled"
	EventMessageSigned   EventKind = "message_signed"
)

// Event is a notification about a state transition. Events are emitted
// only for transitions that were durably written.
type Event struct {
	Kind  EventKind
	TxID  int64
	Actor quorum.Address
	// Threshold carries the new value for threshold change events.
	Threshold int64
	// Success distinguishes executed from failed execution outcomes.
	Success bool
}

// EventSink receives engine events. A nil sink drops them.
type EventSink interface {
	Emit(Event)
}
