package orm

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal model used to exercise the bucket plumbing.
type counter struct {
	Count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrap(errors.ErrInput, "expected 8 bytes")
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", &counter{})

	key := []byte("mykey")
	obj := NewSimpleObj(key, &counter{Count: 55})
	require.NoError(t, bucket.Save(db, obj))

	loaded, err := bucket.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, key, loaded.Key())
	assert.Equal(t, int64(55), loaded.Value().(*counter).Count)

	// missing key returns nil, not an error
	missing, err := bucket.Get(db, []byte("unknown"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, bucket.Delete(db, key))
	gone, err := bucket.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestBucketRejectsInvalidObject(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", &counter{})

	err := bucket.Save(db, NewSimpleObj([]byte("k"), &counter{Count: -1}))
	assert.True(t, errors.ErrState.Is(err))

	err = bucket.Save(db, NewSimpleObj(nil, &counter{Count: 1}))
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestBucketsDoNotOverlap(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("one", &counter{})
	two := NewBucket("two", &counter{})

	key := []byte("shared")
	require.NoError(t, one.Save(db, NewSimpleObj(key, &counter{Count: 1})))
	require.NoError(t, two.Save(db, NewSimpleObj(key, &counter{Count: 2})))

	a, err := one.Get(db, key)
	require.NoError(t, err)
	b, err := two.Get(db, key)
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.Value().(*counter).Count)
	assert.Equal(t, int64(2), b.Value().(*counter).Count)
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("tx", "id")

	val, err := seq.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	val, err = seq.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)

	latest, raw, err := seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest)
	assert.Equal(t, EncodeSequence(2), raw)

	// byte representation sorts in issue order
	prev, err := seq.NextVal(db)
	require.NoError(t, err)
	next, err := seq.NextVal(db)
	require.NoError(t, err)
	assert.True(t, string(prev) < string(next))
}
