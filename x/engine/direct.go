package engine

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// DirectRequest is a single shot execution authorized by an off band
// collected signature bundle instead of ledger approvals. The whole
// request, fee parameters included, is bound into the signed digest.
type DirectRequest struct {
	Kind    CallKind
	Target  quorum.Address
	Value   uint64
	Payload []byte

	// Budget is forwarded to the executor. The engine rejects the
	// request before any external call when the remaining resources
	// cannot cover it on top of the configured margin.
	Budget int64

	// Signatures is the bundle over this request's direct digest.
	Signatures []byte

	// FeeAmount compensates the relayer after the attempt; zero skips
	// settlement. A nil FeeToken means the native unit.
	FeeToken    quorum.Address
	FeeAmount   uint64
	FeeReceiver quorum.Address
}

// actionBytes serializes everything the signers commit to, except the
// nonce which the digest adds separately.
func (req DirectRequest) actionBytes() ([]byte, error) {
	core, err := (&Transaction{
		Kind:    req.Kind,
		Target:  req.Target,
		Value:   req.Value,
		Payload: req.Payload,
	}).Marshal()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	writeChunk(&buf, core)
	writeUint(&buf, uint64(req.Budget))
	writeChunk(&buf, req.FeeToken)
	writeUint(&buf, req.FeeAmount)
	writeChunk(&buf, req.FeeReceiver)
	return buf.Bytes(), nil
}

func writeChunk(buf *bytes.Buffer, raw []byte) {
	writeUint(buf, uint64(len(raw)))
	buf.Write(raw)
}

func writeUint(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// DirectDigest computes the digest owners must sign for the next direct
// execution on this store, along with the nonce it is valid for.
func (e *AuthorizationEngine) DirectDigest(db quorum.ReadOnlyKVStore, req DirectRequest) ([]byte, int64, error) {
	seq := e.nonce
	last, _, err := seq.Latest(db)
	if err != nil {
		return nil, 0, err
	}
	nonce := last + 1
	action, err := req.actionBytes()
	if err != nil {
		return nil, 0, err
	}
	return sigs.ActionDigest(e.opts.ChainID, e.opts.Address, nonce, action), nonce, nil
}

// ExecDirect verifies the bundle against the next nonce and executes
// immediately, with no propose or approve phase. The nonce is consumed
// unconditionally: once the request passes validation the same digest
// can never authorize a second execution, even if this one fails.
//
// Validation failures (bad signatures, insufficient budget, guard veto)
// reject atomically before the nonce is persisted and before any
// external call starts.
func (e *AuthorizationEngine) ExecDirect(ctx context.Context, db quorum.CacheableKVStore, req DirectRequest) (bool, error) {
	if err := (&Transaction{Kind: req.Kind, Target: req.Target, Value: req.Value, Payload: req.Payload}).Validate(); err != nil {
		return false, err
	}
	if req.Budget < 0 {
		return false, errors.Wrapf(errors.ErrInput, "budget %d", req.Budget)
	}
	caller := e.opts.Auth.Identity(ctx)

	cache := db.CacheWrap()
	seq := e.nonce
	nonce, err := seq.NextInt(cache)
	if err != nil {
		cache.Discard()
		return false, err
	}
	action, err := req.actionBytes()
	if err != nil {
		cache.Discard()
		return false, err
	}
	digest := sigs.ActionDigest(e.opts.ChainID, e.opts.Address, nonce, action)

	threshold, err := e.owners.Threshold(cache)
	if err != nil {
		cache.Discard()
		return false, err
	}
	if err := e.verify.CheckSignatures(cache, caller, digest, digest, req.Signatures, threshold); err != nil {
		cache.Discard()
		return false, err
	}
	if e.opts.Executor.CurrentResourceBudget()-e.opts.ResourceMargin < req.Budget {
		cache.Discard()
		return false, errors.Wrapf(ErrInsufficientBudget, "cannot forward %d", req.Budget)
	}
	if e.opts.Guard != nil {
		tx := &Transaction{Kind: req.Kind, Target: req.Target.Clone(), Value: req.Value, Payload: req.Payload}
		if err := e.opts.Guard.PreCheck(ctx, tx, caller); err != nil {
			cache.Discard()
			return false, errors.Wrapf(ErrGuardRejected, "%v", err)
		}
	}

	// the consumed nonce must be durable before the boundary call
	if err := cache.Write(); err != nil {
		return false, err
	}

	success := e.opts.Executor.Execute(ctx, req.Kind, req.Target, req.Value, req.Payload, req.Budget)
	e.flush([]Event{outcomeEvent(nonce, caller, success)})
	if e.opts.Guard != nil {
		e.opts.Guard.PostCheck(ctx, digest, success)
	}

	if req.FeeAmount > 0 {
		if e.opts.Fees == nil {
			return success, errors.Wrap(ErrFeeSettlement, "no fee settlement configured")
		}
		if !e.opts.Fees.Transfer(ctx, req.FeeToken, req.FeeAmount, req.FeeReceiver) {
			return success, errors.Wrapf(ErrFeeSettlement, "%d to %s", req.FeeAmount, req.FeeReceiver)
		}
	}
	return success, nil
}
