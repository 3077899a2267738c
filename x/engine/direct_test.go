package engine_test

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/x/engine"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedKeys(n int) []*crypto.PrivateKey {
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = crypto.GenPrivateKey()
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Address(), keys[j].Address()) < 0
	})
	return keys
}

func keyAddrs(keys []*crypto.PrivateKey) []quorum.Address {
	out := make([]quorum.Address, len(keys))
	for i, k := range keys {
		out[i] = k.Address()
	}
	return out
}

// signDirect signs the next direct digest with the given keys, which
// must already be in ascending address order.
func signDirect(t testing.TB, f *fixture, req engine.DirectRequest, keys []*crypto.PrivateKey) (engine.DirectRequest, int64) {
	t.Helper()
	digest, nonce, err := f.eng.DirectDigest(f.db, req)
	require.NoError(t, err)
	var b sigs.BundleBuilder
	for _, k := range keys {
		sig, err := k.Sign(digest)
		require.NoError(t, err)
		b.Ecdsa(sig)
	}
	req.Signatures = b.Build()
	return req, nonce
}

func TestExecDirect(t *testing.T) {
	keys := sortedKeys(3)
	f := newFixture(t, keyAddrs(keys), 2, nil)
	target := quorum.RandomAddress()

	req := engine.DirectRequest{
		Kind:    engine.CallKindCall,
		Target:  target,
		Value:   5,
		Payload: []byte("pay bob"),
		Budget:  100,
	}
	req, nonce := signDirect(t, f, req, keys[:2])
	assert.Equal(t, int64(1), nonce)

	done, err := f.eng.ExecDirect(context.Background(), f.db, req)
	require.NoError(t, err)
	assert.True(t, done)
	require.Len(t, f.exec.Calls, 1)
	assert.Equal(t, int64(100), f.exec.Calls[0].Budget)

	consumed, err := f.eng.Nonce(f.db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), consumed)
}

func TestExecDirectReplayIsRejected(t *testing.T) {
	keys := sortedKeys(2)
	f := newFixture(t, keyAddrs(keys), 2, nil)

	req := engine.DirectRequest{Kind: engine.CallKindCall, Target: quorum.RandomAddress(), Budget: 10}
	req, _ = signDirect(t, f, req, keys)

	done, err := f.eng.ExecDirect(context.Background(), f.db, req)
	require.NoError(t, err)
	require.True(t, done)

	// the identical request binds to the consumed nonce and dies
	_, err = f.eng.ExecDirect(context.Background(), f.db, req)
	assert.Error(t, err)
	assert.Len(t, f.exec.Calls, 1)

	// re-signing against the advanced nonce works
	req2, nonce2 := signDirect(t, f, req, keys)
	assert.Equal(t, int64(2), nonce2)
	done, err = f.eng.ExecDirect(context.Background(), f.db, req2)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestExecDirectFailureConsumesNonce(t *testing.T) {
	keys := sortedKeys(2)
	f := newFixture(t, keyAddrs(keys), 2, nil)
	f.exec.Fail = true

	req := engine.DirectRequest{Kind: engine.CallKindCall, Target: quorum.RandomAddress(), Budget: 10}
	req, nonce := signDirect(t, f, req, keys)

	done, err := f.eng.ExecDirect(context.Background(), f.db, req)
	require.NoError(t, err, "a failed call is an outcome, not an error")
	assert.False(t, done)

	consumed, err := f.eng.Nonce(f.db)
	require.NoError(t, err)
	assert.Equal(t, nonce, consumed, "the nonce is spent even on failure")

	// the same authorization can never run again
	f.exec.Fail = false
	_, err = f.eng.ExecDirect(context.Background(), f.db, req)
	assert.Error(t, err)
	assert.Len(t, f.exec.Calls, 1)
}

func TestExecDirectBudgetCheckedBeforeCall(t *testing.T) {
	keys := sortedKeys(2)
	f := newFixture(t, keyAddrs(keys), 2, func(o *engine.Options) { o.ResourceMargin = 50 })
	f.exec.Budget = 120

	req := engine.DirectRequest{Kind: engine.CallKindCall, Target: quorum.RandomAddress(), Budget: 100}
	req, _ = signDirect(t, f, req, keys)

	_, err := f.eng.ExecDirect(context.Background(), f.db, req)
	assert.True(t, engine.ErrInsufficientBudget.Is(err))
	assert.Empty(t, f.exec.Calls, "rejected before any external call")

	// the rejection did not burn the nonce
	consumed, err := f.eng.Nonce(f.db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), consumed)

	// the very same signatures stay valid for a fitting budget
	f.exec.Budget = 1000
	done, err := f.eng.ExecDirect(context.Background(), f.db, req)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestExecDirectRejectsBadBundles(t *testing.T) {
	keys := sortedKeys(3)
	f := newFixture(t, keyAddrs(keys), 2, nil)

	req := engine.DirectRequest{Kind: engine.CallKindCall, Target: quorum.RandomAddress(), Budget: 10}

	// one signature short of the threshold
	short, _ := signDirect(t, f, req, keys[:1])
	_, err := f.eng.ExecDirect(context.Background(), f.db, short)
	assert.True(t, sigs.ErrBundleTooShort.Is(err))

	// descending signer order
	digest, _, err := f.eng.DirectDigest(f.db, req)
	require.NoError(t, err)
	var b sigs.BundleBuilder
	for i := 1; i >= 0; i-- {
		sig, err := keys[i].Sign(digest)
		require.NoError(t, err)
		b.Ecdsa(sig)
	}
	unsorted := req
	unsorted.Signatures = b.Build()
	_, err = f.eng.ExecDirect(context.Background(), f.db, unsorted)
	assert.True(t, sigs.ErrUnsortedOrDuplicateSigner.Is(err))

	// a stranger key in the bundle
	stranger := crypto.GenPrivateKey()
	var sb sigs.BundleBuilder
	sig, err := stranger.Sign(digest)
	require.NoError(t, err)
	sig2, err := keys[0].Sign(digest)
	require.NoError(t, err)
	if bytes.Compare(stranger.Address(), keys[0].Address()) < 0 {
		sb.Ecdsa(sig).Ecdsa(sig2)
	} else {
		sb.Ecdsa(sig2).Ecdsa(sig)
	}
	foreign := req
	foreign.Signatures = sb.Build()
	_, err = f.eng.ExecDirect(context.Background(), f.db, foreign)
	assert.True(t, sigs.ErrNotAnOwner.Is(err))

	assert.Empty(t, f.exec.Calls)
	consumed, err := f.eng.Nonce(f.db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), consumed, "rejections never burn the nonce")
}

func TestExecDirectDigestsAreInstanceBound(t *testing.T) {
	keys := sortedKeys(2)
	ownerSet := keyAddrs(keys)

	f1 := newFixture(t, ownerSet, 2, nil)
	f2 := newFixture(t, ownerSet, 2, nil)

	req := engine.DirectRequest{Kind: engine.CallKindCall, Target: quorum.RandomAddress(), Budget: 10}
	signed, _ := signDirect(t, f1, req, keys)

	// same owners, same nonce, different engine identity
	_, err := f2.eng.ExecDirect(context.Background(), f2.db, signed)
	assert.Error(t, err)
	assert.Empty(t, f2.exec.Calls)

	done, err := f1.eng.ExecDirect(context.Background(), f1.db, signed)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestExecDirectFeeSettlement(t *testing.T) {
	keys := sortedKeys(2)
	fees := &quorumtest.Fees{}
	f := newFixture(t, keyAddrs(keys), 2, func(o *engine.Options) { o.Fees = fees })
	relayer := quorum.RandomAddress()

	req := engine.DirectRequest{
		Kind:        engine.CallKindCall,
		Target:      quorum.RandomAddress(),
		Budget:      10,
		FeeAmount:   7,
		FeeReceiver: relayer,
	}
	req, _ = signDirect(t, f, req, keys)

	done, err := f.eng.ExecDirect(context.Background(), f.db, req)
	require.NoError(t, err)
	assert.True(t, done)
	require.Len(t, fees.Transfers, 1)
	assert.Equal(t, uint64(7), fees.Transfers[0].Amount)
	assert.Equal(t, relayer, fees.Transfers[0].Receiver)

	// fee parameters are part of the signed digest
	tampered, _ := signDirect(t, f, req, keys)
	tampered.FeeAmount = 1
	_, err = f.eng.ExecDirect(context.Background(), f.db, tampered)
	assert.Error(t, err, "signatures cover the original fee amount")
}

func TestExecDirectFeeFailureIsReported(t *testing.T) {
	keys := sortedKeys(2)
	fees := &quorumtest.Fees{Fail: true}
	f := newFixture(t, keyAddrs(keys), 2, func(o *engine.Options) { o.Fees = fees })

	req := engine.DirectRequest{
		Kind:        engine.CallKindCall,
		Target:      quorum.RandomAddress(),
		Budget:      10,
		FeeAmount:   3,
		FeeReceiver: quorum.RandomAddress(),
	}
	req, _ = signDirect(t, f, req, keys)

	done, err := f.eng.ExecDirect(context.Background(), f.db, req)
	assert.True(t, engine.ErrFeeSettlement.Is(err))
	assert.True(t, done, "the execution itself went through")
}
