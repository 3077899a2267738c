package engine

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/x/modules"
	"github.com/iov-one/quorum/x/owners"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/rs/zerolog"
)

// Options configures an AuthorizationEngine instance.
type Options struct {
	// ChainID is the network identifier bound into every digest, so
	// authorizations cannot travel between networks.
	ChainID string

	// Address is this engine instance's own identity. Transactions
	// targeting it are routed to self administration.
	Address quorum.Address

	// ResourceMargin is the budget the engine keeps for itself when
	// forwarding resources to an external call.
	ResourceMargin int64

	// Auth resolves caller identities from the request context.
	Auth Authenticator

	// Executor performs the external state changing calls.
	Executor LedgerExecutor

	// Delegated validates contract style signature slots. Optional;
	// without it such slots are rejected.
	Delegated sigs.DelegatedSigner

	// Guard intercepts every privileged execution path. Optional.
	Guard GuardHook

	// Fees settles relayer compensation on the direct path. Optional.
	Fees FeeSettlement

	// Events receives state transition notifications. Optional.
	Events EventSink

	// Logger for structured operation logs. The zero value is silent.
	Logger zerolog.Logger
}

// AuthorizationEngine orchestrates the propose, approve and execute
// state machine over the owner registry, the module registry and the
// transaction ledger. All state lives in the store handed to each
// operation; the engine itself carries only configuration, so a single
// instance may serve many stores.
//
// Every operation is atomic: it either persists completely or rejects
// with no observable state change. The only partial outcome is a failed
// external execution, which is a recorded business result, not an
// error.
type AuthorizationEngine struct {
	opts    Options
	owners  owners.Registry
	modules modules.Manager
	verify  sigs.Verifier
	ledger  Ledger
	nonce   orm.Sequence
	logger  zerolog.Logger
}

// NewEngine validates the options and returns a ready engine.
func NewEngine(opts Options) (*AuthorizationEngine, error) {
	if !quorum.IsValidChainID(opts.ChainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", opts.ChainID)
	}
	if err := opts.Address.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine address")
	}
	if opts.Auth == nil {
		return nil, errors.Wrap(errors.ErrInput, "authenticator is required")
	}
	if opts.Executor == nil {
		return nil, errors.Wrap(errors.ErrInput, "ledger executor is required")
	}
	if opts.ResourceMargin < 0 {
		return nil, errors.Wrapf(errors.ErrInput, "resource margin %d", opts.ResourceMargin)
	}
	reg := owners.NewRegistry(opts.Address)
	return &AuthorizationEngine{
		opts:    opts,
		owners:  reg,
		modules: modules.NewManager(opts.Address),
		verify:  sigs.NewVerifier(reg, opts.Delegated),
		ledger:  NewLedger(),
		nonce:   orm.NewSequence("engine", "nonce"),
		logger:  opts.Logger,
	}, nil
}

// Setup initializes the owner registry and the module set in one shot.
// It fails when the store was set up before.
func (e *AuthorizationEngine) Setup(db quorum.CacheableKVStore, ownerSet []quorum.Address, threshold int64) error {
	cache := db.CacheWrap()
	if err := e.owners.Setup(cache, ownerSet, threshold); err != nil {
		cache.Discard()
		return err
	}
	if err := e.modules.Init(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return err
	}
	e.flush([]Event{{Kind: EventThresholdChange, Threshold: threshold}})
	e.logger.Info().Int("owners", len(ownerSet)).Int64("threshold", threshold).Msg("engine set up")
	return nil
}

// Propose records a new candidate action and returns its transaction
// id. It carries no approvals yet, not even the proposer's.
func (e *AuthorizationEngine) Propose(ctx context.Context, db quorum.CacheableKVStore, kind CallKind, target quorum.Address, value uint64, payload []byte) (int64, error) {
	caller, err := e.ownerCaller(ctx, db)
	if err != nil {
		return 0, err
	}
	tx := &Transaction{
		Kind:    kind,
		Target:  target.Clone(),
		Value:   value,
		Payload: payload,
	}
	if err := tx.Validate(); err != nil {
		return 0, err
	}
	cache := db.CacheWrap()
	id, err := e.ledger.Create(cache, tx)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	if err := cache.Write(); err != nil {
		return 0, err
	}
	e.flush([]Event{{Kind: EventSubmitted, TxID: id, Actor: caller}})
	return id, nil
}

// Approve records the caller's approval and, once the approval count
// reaches the threshold, immediately attempts execution in the same
// call. It returns whether the transaction executed successfully.
func (e *AuthorizationEngine) Approve(ctx context.Context, db quorum.CacheableKVStore, id int64) (bool, error) {
	caller, err := e.ownerCaller(ctx, db)
	if err != nil {
		return false, err
	}
	cache := db.CacheWrap()
	tx, err := e.loadPending(cache, id)
	if err != nil {
		cache.Discard()
		return false, err
	}
	switch ok, err := e.ledger.HasApproval(cache, id, caller); {
	case err != nil:
		cache.Discard()
		return false, err
	case ok:
		cache.Discard()
		return false, errors.Wrapf(ErrAlreadyApproved, "id %d owner %s", id, caller)
	}
	if err := e.ledger.SetApproval(cache, id, caller); err != nil {
		cache.Discard()
		return false, err
	}
	tx.Approvals++
	if err := e.ledger.Save(cache, id, tx); err != nil {
		cache.Discard()
		return false, err
	}
	events := []Event{{Kind: EventApproved, TxID: id, Actor: caller}}

	threshold, err := e.owners.Threshold(cache)
	if err != nil {
		cache.Discard()
		return false, err
	}
	if tx.Approvals < threshold {
		if err := cache.Write(); err != nil {
			return false, err
		}
		e.flush(events)
		return false, nil
	}
	return e.executeQuorate(ctx, db, cache, caller, id, tx, events)
}

// RevokeApproval withdraws the caller's approval of a not yet executed
// transaction. It never attempts execution.
func (e *AuthorizationEngine) RevokeApproval(ctx context.Context, db quorum.CacheableKVStore, id int64) error {
	caller, err := e.ownerCaller(ctx, db)
	if err != nil {
		return err
	}
	cache := db.CacheWrap()
	tx, err := e.loadPending(cache, id)
	if err != nil {
		cache.Discard()
		return err
	}
	switch ok, err := e.ledger.HasApproval(cache, id, caller); {
	case err != nil:
		cache.Discard()
		return err
	case !ok:
		cache.Discard()
		return errors.Wrapf(ErrNotApproved, "id %d owner %s", id, caller)
	}
	if err := e.ledger.ClearApproval(cache, id, caller); err != nil {
		cache.Discard()
		return err
	}
	tx.Approvals--
	if err := e.ledger.Save(cache, id, tx); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return err
	}
	e.flush([]Event{{Kind: EventRevoked, TxID: id, Actor: caller}})
	return nil
}

// Execute attempts to run a quorate transaction. The caller must be an
// owner who approved it. Below the threshold this is a silent no-op
// reporting false, not an error, so callers can poll without branching
// on error kinds.
func (e *AuthorizationEngine) Execute(ctx context.Context, db quorum.CacheableKVStore, id int64) (bool, error) {
	caller, err := e.ownerCaller(ctx, db)
	if err != nil {
		return false, err
	}
	cache := db.CacheWrap()
	tx, err := e.loadPending(cache, id)
	if err != nil {
		cache.Discard()
		return false, err
	}
	switch ok, err := e.ledger.HasApproval(cache, id, caller); {
	case err != nil:
		cache.Discard()
		return false, err
	case !ok:
		cache.Discard()
		return false, errors.Wrapf(ErrNotApproved, "id %d owner %s", id, caller)
	}
	threshold, err := e.owners.Threshold(cache)
	if err != nil {
		cache.Discard()
		return false, err
	}
	if tx.Approvals < threshold {
		cache.Discard()
		return false, nil
	}
	return e.executeQuorate(ctx, db, cache, caller, id, tx, nil)
}

// RequestExecution lets a registered module trigger an execution
// without quorum. This is a separate, lower trust tier: modules cannot
// approve ledger transactions and can never reach self administration.
func (e *AuthorizationEngine) RequestExecution(ctx context.Context, db quorum.CacheableKVStore, kind CallKind, target quorum.Address, value uint64, payload []byte) (bool, error) {
	caller := e.opts.Auth.Identity(ctx)
	if caller == nil {
		return false, errors.Wrap(errors.ErrUnauthorized, "no identity")
	}
	switch ok, err := e.modules.IsModule(db, caller); {
	case err != nil:
		return false, err
	case !ok:
		return false, errors.Wrapf(errors.ErrUnauthorized, "not a module: %s", caller)
	}
	if target.Equals(e.opts.Address) {
		return false, errors.Wrap(errors.ErrUnauthorized, "self administration requires quorum")
	}
	tx := &Transaction{Kind: kind, Target: target.Clone(), Value: value, Payload: payload}
	if err := tx.Validate(); err != nil {
		return false, err
	}
	if e.opts.Guard != nil {
		if err := e.opts.Guard.PreCheck(ctx, tx.Copy(), caller); err != nil {
			return false, errors.Wrapf(ErrGuardRejected, "%v", err)
		}
	}
	success := e.opts.Executor.Execute(ctx, kind, target, value, payload, e.forwardBudget())
	e.flush([]Event{outcomeEvent(0, caller, success)})
	if e.opts.Guard != nil {
		digest, err := e.ActionDigest(kind, target, value, payload, 0)
		if err != nil {
			return success, err
		}
		e.opts.Guard.PostCheck(ctx, digest, success)
	}
	return success, nil
}

// ApproveHash lets an owner pre-authorize a digest, so a later bundle
// may carry a pre-approved slot instead of a live signature.
func (e *AuthorizationEngine) ApproveHash(ctx context.Context, db quorum.CacheableKVStore, digest []byte) error {
	caller, err := e.ownerCaller(ctx, db)
	if err != nil {
		return err
	}
	cache := db.CacheWrap()
	if err := sigs.ApproveHash(cache, caller, digest); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

// CheckSignatures verifies a bundle against the current owner set and
// threshold without changing any state.
func (e *AuthorizationEngine) CheckSignatures(ctx context.Context, db quorum.ReadOnlyKVStore, digest, msgContext, bundle []byte) error {
	threshold, err := e.owners.Threshold(db)
	if err != nil {
		return err
	}
	return e.verify.CheckSignatures(db, e.opts.Auth.Identity(ctx), digest, msgContext, bundle, threshold)
}

// VerifyMessage reports whether the engine vouches for a digest, either
// through a stored signed message record or through a live bundle.
func (e *AuthorizationEngine) VerifyMessage(ctx context.Context, db quorum.ReadOnlyKVStore, digest, bundle []byte) error {
	threshold, err := e.owners.Threshold(db)
	if err != nil {
		return err
	}
	return e.verify.VerifyMessage(db, e.opts.Auth.Identity(ctx), digest, bundle, threshold)
}

// ActionDigest computes the digest an owner signs to authorize the
// action under the given nonce.
func (e *AuthorizationEngine) ActionDigest(kind CallKind, target quorum.Address, value uint64, payload []byte, nonce int64) ([]byte, error) {
	action, err := (&Transaction{Kind: kind, Target: target, Value: value, Payload: payload}).Marshal()
	if err != nil {
		return nil, err
	}
	return sigs.ActionDigest(e.opts.ChainID, e.opts.Address, nonce, action), nil
}

// Owners returns the current owner set in list order.
func (e *AuthorizationEngine) Owners(db quorum.ReadOnlyKVStore) ([]quorum.Address, error) {
	return e.owners.Owners(db)
}

// Threshold returns the current approval threshold.
func (e *AuthorizationEngine) Threshold(db quorum.ReadOnlyKVStore) (int64, error) {
	return e.owners.Threshold(db)
}

// IsOwner checks owner membership.
func (e *AuthorizationEngine) IsOwner(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	return e.owners.IsOwner(db, a)
}

// IsModule checks module membership.
func (e *AuthorizationEngine) IsModule(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	return e.modules.IsModule(db, a)
}

// ListModules returns one page of the module set.
func (e *AuthorizationEngine) ListModules(db quorum.ReadOnlyKVStore, start quorum.Address, pageSize int) ([]quorum.Address, quorum.Address, error) {
	return e.modules.ListModules(db, start, pageSize)
}

// GetTransaction loads a ledger entry.
func (e *AuthorizationEngine) GetTransaction(db quorum.ReadOnlyKVStore, id int64) (*Transaction, error) {
	return e.ledger.Get(db, id)
}

// LatestTxID returns the most recently allocated transaction id.
func (e *AuthorizationEngine) LatestTxID(db quorum.ReadOnlyKVStore) (int64, error) {
	return e.ledger.LatestID(db)
}

// Nonce returns the last consumed direct execution nonce.
func (e *AuthorizationEngine) Nonce(db quorum.ReadOnlyKVStore) (int64, error) {
	seq := e.nonce
	val, _, err := seq.Latest(db)
	return val, err
}

// executeQuorate finishes an operation whose staged cache holds a
// quorate, not yet executed transaction. It owns the cache from here
// on: it either writes it or discards it.
//
// For an external target the executed flag is made durable before the
// boundary call, so a reentrant attempt on the same id is rejected by
// the pending guard no matter what the executor does. A failed call
// then resets the flag, leaving the transaction retryable.
func (e *AuthorizationEngine) executeQuorate(ctx context.Context, db quorum.CacheableKVStore, cache quorum.KVCacheWrap, caller quorum.Address, id int64, tx *Transaction, events []Event) (bool, error) {
	if e.opts.Guard != nil {
		if err := e.opts.Guard.PreCheck(ctx, tx.Copy(), caller); err != nil {
			cache.Discard()
			return false, errors.Wrapf(ErrGuardRejected, "%v", err)
		}
	}
	digest, err := e.ActionDigest(tx.Kind, tx.Target, tx.Value, tx.Payload, id)
	if err != nil {
		cache.Discard()
		return false, err
	}

	if tx.Target.Equals(e.opts.Address) {
		return e.executeAdmin(ctx, cache, caller, id, tx, digest, events)
	}

	tx.Executed = true
	if err := e.ledger.Save(cache, id, tx); err != nil {
		cache.Discard()
		return false, err
	}
	if err := cache.Write(); err != nil {
		return false, err
	}
	e.flush(events)

	success := e.opts.Executor.Execute(ctx, tx.Kind, tx.Target, tx.Value, tx.Payload, e.forwardBudget())
	if !success {
		tx.Executed = false
		if err := e.ledger.Save(db, id, tx); err != nil {
			return false, err
		}
	}
	e.flush([]Event{outcomeEvent(id, caller, success)})
	if e.opts.Guard != nil {
		e.opts.Guard.PostCheck(ctx, digest, success)
	}
	return success, nil
}

// executeAdmin runs a transaction targeting the engine itself. There is
// no boundary call; the admin mutations are staged in a nested cache so
// a failing action leaves the transaction pending and retryable while
// the approvals still persist.
func (e *AuthorizationEngine) executeAdmin(ctx context.Context, cache quorum.KVCacheWrap, caller quorum.Address, id int64, tx *Transaction, digest []byte, events []Event) (bool, error) {
	success := true
	adminCache := cache.CacheWrap()
	adminEvents, err := e.applyAdmin(adminCache, tx.Payload)
	if err != nil {
		adminCache.Discard()
		success = false
		e.logger.Info().Int64("tx", id).Err(err).Msg("admin action failed")
	} else if err := adminCache.Write(); err != nil {
		cache.Discard()
		return false, err
	}

	tx.Executed = success
	if err := e.ledger.Save(cache, id, tx); err != nil {
		cache.Discard()
		return false, err
	}
	if err := cache.Write(); err != nil {
		return false, err
	}
	e.flush(events)
	e.flush(adminEvents)
	e.flush([]Event{outcomeEvent(id, caller, success)})
	if e.opts.Guard != nil {
		e.opts.Guard.PostCheck(ctx, digest, success)
	}
	return success, nil
}

// loadPending loads a transaction and rejects already executed ones.
func (e *AuthorizationEngine) loadPending(db quorum.ReadOnlyKVStore, id int64) (*Transaction, error) {
	tx, err := e.ledger.Get(db, id)
	if err != nil {
		return nil, err
	}
	if tx.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "id %d", id)
	}
	return tx, nil
}

// ownerCaller resolves the caller and requires owner membership.
func (e *AuthorizationEngine) ownerCaller(ctx context.Context, db quorum.ReadOnlyKVStore) (quorum.Address, error) {
	caller := e.opts.Auth.Identity(ctx)
	if caller == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no identity")
	}
	switch ok, err := e.owners.IsOwner(db, caller); {
	case err != nil:
		return nil, err
	case !ok:
		return nil, errors.Wrapf(sigs.ErrNotAnOwner, "%s", caller)
	}
	return caller, nil
}

func (e *AuthorizationEngine) forwardBudget() int64 {
	budget := e.opts.Executor.CurrentResourceBudget() - e.opts.ResourceMargin
	if budget < 0 {
		return 0
	}
	return budget
}

func (e *AuthorizationEngine) flush(events []Event) {
	for _, ev := range events {
		if e.opts.Events != nil {
			e.opts.Events.Emit(ev)
		}
		e.logger.Info().
			Str("event", string(ev.Kind)).
			Int64("tx", ev.TxID).
			Str("actor", ev.Actor.String()).
			Bool("success", ev.Success).
			Msg("state transition")
	}
}

func outcomeEvent(id int64, actor quorum.Address, success bool) Event {
	if success {
		return Event{Kind: EventExecuted, TxID: id, Actor: actor, Success: true}
	}
	return Event{Kind: EventExecutionFailed, TxID: id, Actor: actor}
}
