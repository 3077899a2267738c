package orm

import (
	"github.com/iov-one/quorum"
)

// Validater is any struct that can self-validate. It differs from the
// commonly used Validator name to avoid the mental association with
// consensus validators.
type Validater interface {
	Validate() error
}

// Model is what is stored as a bucket value. This is typically a light
// wrapper around a protobuf-defined type.
type Model interface {
	quorum.Persistent
	Validater
}

// Object is what is stored in the bucket.
// Key is joined with the bucket prefix to form the full db key.
type Object interface {
	Key() []byte
	SetKey([]byte)

	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validater
	Value() Model
}

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db quorum.ReadOnlyKVStore, key []byte) (Object, error)
}
