package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data under a named prefix.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
// Bucket is a prefixed subspace of the DB.
// proto defines the default Model, all elements of this type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Model
}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Model) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element
func (b Bucket) Get(db quorum.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data and reconstructs the data this Bucket
// would return. Used internally as part of Get. It is exposed mainly as a
// test helper.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	model := reflect.New(reflect.TypeOf(b.proto).Elem()).Interface().(Model)
	if err := model.Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "parsing %s: %v", b.name, err)
	}
	return NewSimpleObj(key, model), nil
}

// Save will write the object, if it validates
func (b Bucket) Save(db quorum.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return errors.Wrap(err, "invalid object")
	}
	bz, err := obj.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), bz)
}

// Delete will remove the value at a key
func (b Bucket) Delete(db quorum.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Has checks if a key is present in the bucket
func (b Bucket) Has(db quorum.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}
