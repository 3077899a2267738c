package sigs

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
)

// BundleBuilder assembles a signature bundle slot by slot. Nested blobs
// of delegated slots are collected separately and appended after the
// slot area, with their offsets resolved on Build.
//
// The builder does not sort: slots must be added in ascending resolved
// signer order, the same order the verifier enforces.
type BundleBuilder struct {
	slots []slotDraft
	blobs [][]byte
}

type slotDraft struct {
	r    [32]byte
	s    [32]byte
	v    byte
	blob int // index into blobs, -1 for none
}

// Ecdsa appends a plain recoverable signature slot.
func (b *BundleBuilder) Ecdsa(sig crypto.Signature) *BundleBuilder {
	b.slots = append(b.slots, newDraft(sig.R, sig.S, sig.V))
	return b
}

// EcdsaPrefixed appends a slot for a signature made over the
// prefix-wrapped digest. The signature is the output of a prefixed
// signing call; the discriminant shift is applied here.
func (b *BundleBuilder) EcdsaPrefixed(sig crypto.Signature) *BundleBuilder {
	b.slots = append(b.slots, newDraft(sig.R, sig.S, sig.V+prefixShift))
	return b
}

// Delegated appends a slot claiming the given signer with a nested
// signature blob for the signer's own validation logic.
func (b *BundleBuilder) Delegated(signer quorum.Address, nested []byte) *BundleBuilder {
	draft := slotDraft{v: kindDelegated, blob: len(b.blobs)}
	copy(draft.r[32-quorum.AddressLength:], signer)
	b.blobs = append(b.blobs, nested)
	b.slots = append(b.slots, draft)
	return b
}

// PreApproved appends a slot claiming a stored digest approval by the
// given owner.
func (b *BundleBuilder) PreApproved(owner quorum.Address) *BundleBuilder {
	draft := slotDraft{v: kindPreApproved, blob: -1}
	copy(draft.r[32-quorum.AddressLength:], owner)
	b.slots = append(b.slots, draft)
	return b
}

// Build encodes the bundle, resolving blob offsets relative to the
// bundle start.
func (b *BundleBuilder) Build() []byte {
	offsets := make([]uint64, len(b.blobs))
	at := uint64(len(b.slots) * SlotSize)
	for i, blob := range b.blobs {
		offsets[i] = at
		at += 8 + uint64(len(blob))
	}

	out := make([]byte, 0, at)
	for _, draft := range b.slots {
		if draft.blob >= 0 {
			binary.BigEndian.PutUint64(draft.s[24:], offsets[draft.blob])
		}
		out = append(out, draft.r[:]...)
		out = append(out, draft.s[:]...)
		out = append(out, draft.v)
	}
	var size [8]byte
	for _, blob := range b.blobs {
		binary.BigEndian.PutUint64(size[:], uint64(len(blob)))
		out = append(out, size[:]...)
		out = append(out, blob...)
	}
	return out
}

func newDraft(r, s []byte, v byte) slotDraft {
	draft := slotDraft{v: v, blob: -1}
	copy(draft.r[:], r)
	copy(draft.s[:], s)
	return draft
}
