package sigs

import (
	"crypto/sha256"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Storage prefixes for the two verification record kinds. Both are plain
// presence markers, the stored value carries no information.
var (
	approvedHashPrefix  = []byte("_ah:")
	signedMessagePrefix = []byte("_sm:")

	recordMarker = []byte{0x01}
)

// ApproveHash records that the owner pre-authorizes the digest, so a
// later bundle may carry a pre-approved slot for it instead of a live
// signature. The caller is responsible for checking ownership.
func ApproveHash(db quorum.KVStore, owner quorum.Address, digest []byte) error {
	key, err := approvedHashKey(owner, digest)
	if err != nil {
		return err
	}
	return db.Set(key, recordMarker)
}

// IsHashApproved checks for a stored (owner, digest) approval.
func IsHashApproved(db quorum.ReadOnlyKVStore, owner quorum.Address, digest []byte) (bool, error) {
	key, err := approvedHashKey(owner, digest)
	if err != nil {
		return false, err
	}
	return db.Has(key)
}

// RecordSignedMessage marks the digest as vouched for by the engine
// itself. This backs the delegated verification path when the engine's
// own identity acts as a signer for another engine instance.
func RecordSignedMessage(db quorum.KVStore, digest []byte) error {
	key, err := signedMessageKey(digest)
	if err != nil {
		return err
	}
	return db.Set(key, recordMarker)
}

// IsMessageSigned checks for a stored engine-level message record.
func IsMessageSigned(db quorum.ReadOnlyKVStore, digest []byte) (bool, error) {
	key, err := signedMessageKey(digest)
	if err != nil {
		return false, err
	}
	return db.Has(key)
}

func approvedHashKey(owner quorum.Address, digest []byte) ([]byte, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if len(digest) != sha256.Size {
		return nil, errors.Wrapf(errors.ErrInput, "digest size %d", len(digest))
	}
	key := make([]byte, 0, len(approvedHashPrefix)+len(owner)+len(digest))
	key = append(key, approvedHashPrefix...)
	key = append(key, owner...)
	key = append(key, digest...)
	return key, nil
}

func signedMessageKey(digest []byte) ([]byte, error) {
	if len(digest) != sha256.Size {
		return nil, errors.Wrapf(errors.ErrInput, "digest size %d", len(digest))
	}
	return append(signedMessagePrefix, digest...), nil
}
