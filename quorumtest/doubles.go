package quorumtest

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x/engine"
	"github.com/iov-one/quorum/x/sigs"
)

// ExecCall records one call that crossed into the executor.
type ExecCall struct {
	Kind    engine.CallKind
	Target  quorum.Address
	Value   uint64
	Payload []byte
	Budget  int64
}

// Executor is a LedgerExecutor double. By default every call succeeds;
// set Fail to report failure, or install a Hook to script arbitrary
// behavior including reentrant calls back into the engine.
type Executor struct {
	Budget int64
	Fail   bool
	Hook   func(ctx context.Context, call ExecCall) bool
	Calls  []ExecCall
}

// NewExecutor returns an executor with a comfortable budget.
func NewExecutor() *Executor {
	return &Executor{Budget: 1 << 20}
}

func (x *Executor) Execute(ctx context.Context, kind engine.CallKind, target quorum.Address, value uint64, payload []byte, budget int64) bool {
	call := ExecCall{Kind: kind, Target: target, Value: value, Payload: payload, Budget: budget}
	x.Calls = append(x.Calls, call)
	if x.Hook != nil {
		return x.Hook(ctx, call)
	}
	return !x.Fail
}

func (x *Executor) CurrentResourceBudget() int64 {
	return x.Budget
}

// GuardOutcome records one post check observation.
type GuardOutcome struct {
	Digest  []byte
	Success bool
}

// Guard is a GuardHook double. Set Reject to veto every pre check.
type Guard struct {
	Reject    error
	PreCalls  int
	PostCalls []GuardOutcome
}

func (g *Guard) PreCheck(_ context.Context, _ *engine.Transaction, _ quorum.Address) error {
	g.PreCalls++
	return g.Reject
}

func (g *Guard) PostCheck(_ context.Context, digest []byte, success bool) {
	g.PostCalls = append(g.PostCalls, GuardOutcome{Digest: digest, Success: success})
}

// FeeTransfer records one settlement payment.
type FeeTransfer struct {
	Token    quorum.Address
	Amount   uint64
	Receiver quorum.Address
}

// Fees is a FeeSettlement double.
type Fees struct {
	Fail      bool
	Transfers []FeeTransfer
}

func (f *Fees) Transfer(_ context.Context, token quorum.Address, amount uint64, receiver quorum.Address) bool {
	f.Transfers = append(f.Transfers, FeeTransfer{Token: token, Amount: amount, Receiver: receiver})
	return !f.Fail
}

// DelegatedSigner accepts a nested blob only when it matches the
// expected bytes, the way a real signer contract validates its own
// scheme.
type DelegatedSigner struct {
	Expect []byte
}

func (s DelegatedSigner) IsValidSignature(_ quorum.Address, _, nested []byte) ([4]byte, error) {
	if string(nested) == string(s.Expect) {
		return sigs.MagicValue, nil
	}
	return [4]byte{}, nil
}

// EventRecorder collects emitted events in order.
type EventRecorder struct {
	Events []engine.Event
}

func (r *EventRecorder) Emit(ev engine.Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns just the event kinds, convenient for order assertions.
func (r *EventRecorder) Kinds() []engine.EventKind {
	kinds := make([]engine.EventKind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}
