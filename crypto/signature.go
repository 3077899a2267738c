// Package crypto wraps the secp256k1 signature recovery primitive used
// to resolve signer identities from signature bundles.
//
// The engine never stores public keys. An owner is registered by address
// and a signature slot resolves back to an address through public key
// recovery, so verification needs no prior key exchange.
package crypto

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const (
	// SignatureLength is the byte size of an encoded recoverable
	// signature: 32 bytes r, 32 bytes s and one recovery byte.
	SignatureLength = 65

	// recovery byte domain for uncompressed key recovery
	minRecoveryByte = 27
	maxRecoveryByte = 30
)

// signedMessagePrefix is prepended (and the result rehashed) when a
// signature was produced over a wrapped digest by a generic message
// signer rather than over the raw action digest.
var signedMessagePrefix = []byte("\x19Quorum Signed Message:\n32")

// Signature is a recoverable secp256k1 signature in (r, s, v) form.
type Signature struct {
	R []byte // 32 bytes
	S []byte // 32 bytes
	V byte   // recovery byte, 27 or 28
}

// Validate checks the component sizes and the recovery byte domain.
func (s Signature) Validate() error {
	if len(s.R) != 32 || len(s.S) != 32 {
		return errors.Wrapf(errors.ErrInput, "signature component size r=%d s=%d", len(s.R), len(s.S))
	}
	if s.V < minRecoveryByte || s.V > maxRecoveryByte {
		return errors.Wrapf(errors.ErrInput, "recovery byte %d", s.V)
	}
	return nil
}

// RecoverAddress resolves the address of the key that produced the
// signature over the given 32-byte digest.
func RecoverAddress(digest []byte, sig Signature) (quorum.Address, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	if len(digest) != sha256.Size {
		return nil, errors.Wrapf(errors.ErrInput, "digest size %d", len(digest))
	}

	compact := make([]byte, SignatureLength)
	compact[0] = sig.V
	copy(compact[1:33], sig.R)
	copy(compact[33:], sig.S)

	pub, _, err := btcec.RecoverCompact(btcec.S256(), compact, digest)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "recover: %v", err)
	}
	return PubKeyAddress(pub.SerializeCompressed()), nil
}

// PubKeyAddress derives the address of a serialized compressed public key.
func PubKeyAddress(pubkey []byte) quorum.Address {
	return quorum.NewAddress(pubkey)
}

// PrefixDigest wraps a digest the way generic message signers do: the
// raw digest is prepended with a fixed ascii prefix and rehashed. A
// signature over the prefixed digest can never be replayed as a
// signature over a raw action digest.
func PrefixDigest(digest []byte) []byte {
	h := sha256.New()
	h.Write(signedMessagePrefix)
	h.Write(digest)
	return h.Sum(nil)
}
