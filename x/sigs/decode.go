package sigs

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// SlotSize is the byte size of one signature slot: 32 bytes r, 32 bytes
// s and a trailing discriminant byte.
const SlotSize = 65

// Discriminant values outside the recoverable signature ranges.
const (
	kindDelegated   = 0
	kindPreApproved = 1

	// a prefixed-digest signature carries its recovery byte shifted up
	// by this offset, out of the plain 27..30 range
	prefixShift = 4
)

// Kind tags the decoded slot variant.
type Kind uint8

const (
	// KindEcdsa is a recoverable signature over the raw digest.
	KindEcdsa Kind = iota
	// KindEcdsaPrefixed is a recoverable signature over the
	// prefix-wrapped digest (crypto.PrefixDigest).
	KindEcdsaPrefixed
	// KindDelegated defers validation to an external signer contract.
	KindDelegated
	// KindPreApproved claims a stored per-owner digest approval.
	KindPreApproved
)

// Slot is one decoded signature slot. Which fields are meaningful
// depends on the kind: ecdsa variants carry Signature, delegated and
// pre-approved variants carry the claimed Signer, and delegated slots
// additionally carry the bundle offset of their nested blob.
type Slot struct {
	Kind       Kind
	Signature  crypto.Signature
	Signer     quorum.Address
	BlobOffset uint64
}

// DecodeSlot parses the index-th slot of the bundle. All raw byte
// interpretation is kept here so the verifier only handles typed slots.
func DecodeSlot(bundle []byte, index int) (Slot, error) {
	at := index * SlotSize
	if at < 0 || at+SlotSize > len(bundle) {
		return Slot{}, errors.Wrapf(ErrBundleTooShort, "slot %d", index)
	}
	var (
		r = bundle[at : at+32]
		s = bundle[at+32 : at+64]
		v = bundle[at+64]
	)

	switch {
	case v == kindDelegated:
		signer, err := wordAddress(r)
		if err != nil {
			return Slot{}, errors.Wrapf(ErrInvalidSignature, "slot %d signer", index)
		}
		offset, err := wordUint(s)
		if err != nil {
			return Slot{}, errors.Wrapf(ErrMalformedNestedSignature, "slot %d offset", index)
		}
		return Slot{Kind: KindDelegated, Signer: signer, BlobOffset: offset}, nil

	case v == kindPreApproved:
		signer, err := wordAddress(r)
		if err != nil {
			return Slot{}, errors.Wrapf(ErrInvalidSignature, "slot %d signer", index)
		}
		return Slot{Kind: KindPreApproved, Signer: signer}, nil

	case v >= 27 && v <= 30:
		return Slot{
			Kind:      KindEcdsa,
			Signature: crypto.Signature{R: r, S: s, V: v},
		}, nil

	case v >= 27+prefixShift && v <= 30+prefixShift:
		return Slot{
			Kind:      KindEcdsaPrefixed,
			Signature: crypto.Signature{R: r, S: s, V: v - prefixShift},
		}, nil

	default:
		return Slot{}, errors.Wrapf(ErrInvalidSignature, "slot %d discriminant %d", index, v)
	}
}

// NestedBlob extracts the length-prefixed blob a delegated slot points
// at. The blob region must start past the static slot area and lie
// fully within the bundle.
func NestedBlob(bundle []byte, offset uint64, slots int) ([]byte, error) {
	if offset < uint64(slots)*SlotSize {
		return nil, errors.Wrap(ErrMalformedNestedSignature, "blob inside slot area")
	}
	if offset+8 < offset || offset+8 > uint64(len(bundle)) {
		return nil, errors.Wrap(ErrMalformedNestedSignature, "blob offset out of bounds")
	}
	size := binary.BigEndian.Uint64(bundle[offset : offset+8])
	start := offset + 8
	if start+size < start || start+size > uint64(len(bundle)) {
		return nil, errors.Wrap(ErrMalformedNestedSignature, "blob length out of bounds")
	}
	return bundle[start : start+size], nil
}

// wordAddress reads an address stored right-aligned in a 32-byte word.
// The padding must be zero so no signature bytes can be smuggled in.
func wordAddress(word []byte) (quorum.Address, error) {
	pad := len(word) - quorum.AddressLength
	for _, b := range word[:pad] {
		if b != 0 {
			return nil, errors.Wrap(errors.ErrInput, "nonzero address padding")
		}
	}
	a := quorum.Address(word[pad:])
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// wordUint reads an integer stored right-aligned in a 32-byte word.
func wordUint(word []byte) (uint64, error) {
	for _, b := range word[:len(word)-8] {
		if b != 0 {
			return 0, errors.Wrap(errors.ErrInput, "value overflow")
		}
	}
	return binary.BigEndian.Uint64(word[len(word)-8:]), nil
}
