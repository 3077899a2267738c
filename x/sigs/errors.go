package sigs

import (
	"github.com/iov-one/quorum/errors"
)

// error codes 1110-1119 are reserved for the sigs extension
var (
	// ErrInvalidSignature is returned when a slot cannot be resolved to
	// a signer: unknown discriminant, failed recovery or a delegated
	// signer that did not return the magic value.
	ErrInvalidSignature = errors.Register(1110, "invalid signature")

	// ErrBundleTooShort is returned when the bundle holds fewer slots
	// than the threshold requires.
	ErrBundleTooShort = errors.Register(1111, "signature bundle too short")

	// ErrUnsortedOrDuplicateSigner is returned when resolved signers are
	// not in strictly ascending order, which also covers duplicates.
	ErrUnsortedOrDuplicateSigner = errors.Register(1112, "unsorted or duplicate signer")

	// ErrMalformedNestedSignature is returned when a delegated slot
	// points outside the bundle or at a truncated nested blob.
	ErrMalformedNestedSignature = errors.Register(1113, "malformed nested signature")

	// ErrNotAnOwner is returned when a resolved signer is not a current
	// member of the owner registry.
	ErrNotAnOwner = errors.Register(1114, "signer is not an owner")
)
