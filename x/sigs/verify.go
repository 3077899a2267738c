package sigs

import (
	"bytes"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// MagicValue is what a delegated signer must return to accept a nested
// signature. Any other value rejects the slot.
var MagicValue = [4]byte{0x20, 0xc1, 0x3b, 0x0b}

// MemberChecker answers owner membership. The owner registry satisfies
// this without the verifier depending on the full registry surface.
type MemberChecker interface {
	IsOwner(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error)
}

// DelegatedSigner validates nested signatures on behalf of a claimed
// signer identity. It is a boundary call into untrusted code: the
// verifier treats it as attacker-controlled and performs no state
// mutation around it.
type DelegatedSigner interface {
	IsValidSignature(signer quorum.Address, msgContext, nested []byte) ([4]byte, error)
}

// Verifier checks signature bundles against the current owner set.
type Verifier struct {
	members   MemberChecker
	delegated DelegatedSigner
}

// NewVerifier returns a verifier over the given membership source. The
// delegated signer may be nil, in which case delegated slots are
// rejected.
func NewVerifier(members MemberChecker, delegated DelegatedSigner) Verifier {
	return Verifier{members: members, delegated: delegated}
}

// CheckSignatures verifies that the bundle carries threshold valid owner
// signatures over the digest. Exactly threshold slots are inspected;
// anything beyond them is ignored, which bounds verification cost to the
// quorum size. The caller identity is needed for pre-approved slots,
// which are valid without a stored record when the caller is the claimed
// owner itself.
//
// Verification is read-only. It never mutates state, so it is safe to
// expose to external callers as a pure validity check.
func (v Verifier) CheckSignatures(db quorum.ReadOnlyKVStore, caller quorum.Address, digest, msgContext, bundle []byte, threshold int64) error {
	if threshold < 1 {
		return errors.Wrap(errors.ErrInput, "threshold must be positive")
	}
	if int64(len(bundle)) < threshold*SlotSize {
		return errors.Wrapf(ErrBundleTooShort, "%d bytes for threshold %d", len(bundle), threshold)
	}

	var last quorum.Address
	for i := int64(0); i < threshold; i++ {
		slot, err := DecodeSlot(bundle, int(i))
		if err != nil {
			return err
		}
		signer, err := v.resolveSigner(db, caller, digest, msgContext, bundle, slot, threshold)
		if err != nil {
			return err
		}
		if bytes.Compare(signer, last) <= 0 {
			return errors.Wrapf(ErrUnsortedOrDuplicateSigner, "slot %d signer %s", i, signer)
		}
		last = signer

		switch ok, err := v.members.IsOwner(db, signer); {
		case err != nil:
			return err
		case !ok:
			return errors.Wrapf(ErrNotAnOwner, "%s", signer)
		}
	}
	return nil
}

// VerifyMessage checks that the engine vouches for a digest: either a
// signed-message record exists (empty bundle) or the bundle passes a
// full threshold check. This is the engine-side half of the delegated
// signature protocol, called when another instance treats this engine
// as one of its signers.
func (v Verifier) VerifyMessage(db quorum.ReadOnlyKVStore, caller quorum.Address, digest, bundle []byte, threshold int64) error {
	if len(bundle) == 0 {
		switch ok, err := IsMessageSigned(db, digest); {
		case err != nil:
			return err
		case !ok:
			return errors.Wrap(ErrInvalidSignature, "message not signed")
		}
		return nil
	}
	return v.CheckSignatures(db, caller, digest, digest, bundle, threshold)
}

func (v Verifier) resolveSigner(db quorum.ReadOnlyKVStore, caller quorum.Address, digest, msgContext, bundle []byte, slot Slot, slots int64) (quorum.Address, error) {
	switch slot.Kind {
	case KindEcdsa:
		signer, err := crypto.RecoverAddress(digest, slot.Signature)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidSignature, err.Error())
		}
		return signer, nil

	case KindEcdsaPrefixed:
		signer, err := crypto.RecoverAddress(crypto.PrefixDigest(digest), slot.Signature)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidSignature, err.Error())
		}
		return signer, nil

	case KindDelegated:
		if v.delegated == nil {
			return nil, errors.Wrap(ErrInvalidSignature, "no delegated signer configured")
		}
		nested, err := NestedBlob(bundle, slot.BlobOffset, int(slots))
		if err != nil {
			return nil, err
		}
		magic, err := v.delegated.IsValidSignature(slot.Signer, msgContext, nested)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidSignature, err.Error())
		}
		if magic != MagicValue {
			return nil, errors.Wrapf(ErrInvalidSignature, "delegated signer %s rejected", slot.Signer)
		}
		return slot.Signer, nil

	case KindPreApproved:
		if slot.Signer.Equals(caller) {
			return slot.Signer, nil
		}
		switch ok, err := IsHashApproved(db, slot.Signer, digest); {
		case err != nil:
			return nil, err
		case !ok:
			return nil, errors.Wrapf(ErrInvalidSignature, "hash not approved by %s", slot.Signer)
		}
		return slot.Signer, nil

	default:
		return nil, errors.Wrapf(ErrInvalidSignature, "kind %d", slot.Kind)
	}
}
