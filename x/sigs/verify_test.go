package sigs

import (
	"bytes"
	"crypto/sha256"
	"sort"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// members is a minimal in-memory MemberChecker.
type members struct {
	set map[string]bool
}

func (m members) IsOwner(_ quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	return m.set[a.String()], nil
}

func newMembers(addrs ...quorum.Address) members {
	set := make(map[string]bool, len(addrs))
	for _, a := range addrs {
		set[a.String()] = true
	}
	return members{set: set}
}

// acceptingSigner accepts a nested blob only when it equals the expected
// bytes, the way a real signer contract would validate its own scheme.
type acceptingSigner struct {
	expect []byte
}

func (s acceptingSigner) IsValidSignature(_ quorum.Address, _, nested []byte) ([4]byte, error) {
	if bytes.Equal(nested, s.expect) {
		return MagicValue, nil
	}
	return [4]byte{}, nil
}

func sortedKeys(t testing.TB, n int) []*crypto.PrivateKey {
	t.Helper()
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = crypto.GenPrivateKey()
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Address(), keys[j].Address()) < 0
	})
	return keys
}

func testDigest(seed string) []byte {
	sum := sha256.Sum256([]byte(seed))
	return sum[:]
}

func TestCheckSignaturesEcdsa(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("transfer 5 to bob")
	keys := sortedKeys(t, 3)
	v := NewVerifier(newMembers(keys[0].Address(), keys[1].Address(), keys[2].Address()), nil)

	var b BundleBuilder
	for _, k := range keys[:2] {
		sig, err := k.Sign(digest)
		require.NoError(t, err)
		b.Ecdsa(sig)
	}
	bundle := b.Build()

	assert.NoError(t, v.CheckSignatures(db, nil, digest, digest, bundle, 2))

	// extra slots beyond the threshold are ignored, even garbage ones
	padded := append(bundle, make([]byte, SlotSize)...)
	assert.NoError(t, v.CheckSignatures(db, nil, digest, digest, padded, 2))
}

func TestCheckSignaturesBundleTooShort(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	key := crypto.GenPrivateKey()
	v := NewVerifier(newMembers(key.Address()), nil)

	sig, err := key.Sign(digest)
	require.NoError(t, err)
	var b BundleBuilder
	bundle := b.Ecdsa(sig).Build()

	err = v.CheckSignatures(db, nil, digest, digest, bundle, 2)
	assert.True(t, ErrBundleTooShort.Is(err))
}

func TestCheckSignaturesRejectsUnsorted(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	keys := sortedKeys(t, 2)
	v := NewVerifier(newMembers(keys[0].Address(), keys[1].Address()), nil)

	// descending signer order
	var b BundleBuilder
	for i := len(keys) - 1; i >= 0; i-- {
		sig, err := keys[i].Sign(digest)
		require.NoError(t, err)
		b.Ecdsa(sig)
	}
	err := v.CheckSignatures(db, nil, digest, digest, b.Build(), 2)
	assert.True(t, ErrUnsortedOrDuplicateSigner.Is(err))
}

func TestCheckSignaturesRejectsDuplicateSignerAcrossKinds(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	key := crypto.GenPrivateKey()
	v := NewVerifier(newMembers(key.Address()), nil)

	// same key signs twice with different raw bytes: once plain, once
	// over the prefixed digest, both resolving to the same signer
	plain, err := key.Sign(digest)
	require.NoError(t, err)
	prefixed, err := key.SignPrefixed(digest)
	require.NoError(t, err)

	var b BundleBuilder
	bundle := b.Ecdsa(plain).EcdsaPrefixed(prefixed).Build()

	err = v.CheckSignatures(db, nil, digest, digest, bundle, 2)
	assert.True(t, ErrUnsortedOrDuplicateSigner.Is(err))
}

func TestCheckSignaturesRejectsNonOwner(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	owner, stranger := crypto.GenPrivateKey(), crypto.GenPrivateKey()
	v := NewVerifier(newMembers(owner.Address()), nil)

	sig, err := stranger.Sign(digest)
	require.NoError(t, err)
	var b BundleBuilder
	err = v.CheckSignatures(db, nil, digest, digest, b.Ecdsa(sig).Build(), 1)
	assert.True(t, ErrNotAnOwner.Is(err))
}

func TestCheckSignaturesPrefixedVariant(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	key := crypto.GenPrivateKey()
	v := NewVerifier(newMembers(key.Address()), nil)

	sig, err := key.SignPrefixed(digest)
	require.NoError(t, err)
	var b BundleBuilder
	assert.NoError(t, v.CheckSignatures(db, nil, digest, digest, b.EcdsaPrefixed(sig).Build(), 1))

	// the prefixed signature must not validate as a plain one
	var plain BundleBuilder
	err = v.CheckSignatures(db, nil, digest, digest, plain.Ecdsa(sig).Build(), 1)
	assert.Error(t, err)
}

func TestCheckSignaturesPreApproved(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	owner := quorum.RandomAddress()
	v := NewVerifier(newMembers(owner), nil)

	var b BundleBuilder
	bundle := b.PreApproved(owner).Build()

	// without a record only the owner itself may claim the slot
	err := v.CheckSignatures(db, nil, digest, digest, bundle, 1)
	assert.True(t, ErrInvalidSignature.Is(err))

	assert.NoError(t, v.CheckSignatures(db, owner, digest, digest, bundle, 1))

	// with a stored approval anyone may submit the bundle
	require.NoError(t, ApproveHash(db, owner, digest))
	assert.NoError(t, v.CheckSignatures(db, nil, digest, digest, bundle, 1))

	// the record is digest-bound
	err = v.CheckSignatures(db, nil, testDigest("other"), testDigest("other"), bundle, 1)
	assert.True(t, ErrInvalidSignature.Is(err))
}

func TestCheckSignaturesDelegated(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	signer := quorum.RandomAddress()
	nested := []byte("proof bytes")

	v := NewVerifier(newMembers(signer), acceptingSigner{expect: nested})
	var b BundleBuilder
	bundle := b.Delegated(signer, nested).Build()
	assert.NoError(t, v.CheckSignatures(db, nil, digest, digest, bundle, 1))

	// a rejecting signer fails the slot
	rejecting := NewVerifier(newMembers(signer), acceptingSigner{expect: []byte("other")})
	err := rejecting.CheckSignatures(db, nil, digest, digest, bundle, 1)
	assert.True(t, ErrInvalidSignature.Is(err))

	// without a delegated signer capability the slot kind is unusable
	bare := NewVerifier(newMembers(signer), nil)
	err = bare.CheckSignatures(db, nil, digest, digest, bundle, 1)
	assert.True(t, ErrInvalidSignature.Is(err))
}

func TestCheckSignaturesMalformedNestedBlob(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("action")
	signer := quorum.RandomAddress()
	v := NewVerifier(newMembers(signer), acceptingSigner{expect: nil})

	var b BundleBuilder
	bundle := b.Delegated(signer, []byte("blob")).Build()

	cases := map[string]func([]byte) []byte{
		"offset past bundle": func(raw []byte) []byte {
			out := append([]byte{}, raw...)
			out[63] = 0xFF // low byte of the offset word
			return out
		},
		"offset inside slot area": func(raw []byte) []byte {
			out := append([]byte{}, raw...)
			out[63] = 0x00
			return out
		},
		"truncated blob": func(raw []byte) []byte {
			return raw[:len(raw)-2]
		},
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			err := v.CheckSignatures(db, nil, digest, digest, corrupt(bundle), 1)
			assert.True(t, ErrMalformedNestedSignature.Is(err), "got %+v", err)
		})
	}
}

func TestVerifyMessage(t *testing.T) {
	db := store.MemStore()
	digest := testDigest("cross engine message")
	key := crypto.GenPrivateKey()
	v := NewVerifier(newMembers(key.Address()), nil)

	// no record, no bundle
	err := v.VerifyMessage(db, nil, digest, nil, 1)
	assert.True(t, ErrInvalidSignature.Is(err))

	require.NoError(t, RecordSignedMessage(db, digest))
	assert.NoError(t, v.VerifyMessage(db, nil, digest, nil, 1))

	// a live bundle works without any record
	other := testDigest("never recorded")
	sig, err := key.Sign(other)
	require.NoError(t, err)
	var b BundleBuilder
	assert.NoError(t, v.VerifyMessage(db, nil, other, b.Ecdsa(sig).Build(), 1))
}
