package store

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSetDelete(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("b"), []byte("2")))

	cache := base.CacheWrap()

	// reads pass through to the backing store
	v, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	// writes are only visible in the cache until Write
	require.NoError(t, cache.Set([]byte("c"), []byte("3")))
	require.NoError(t, cache.Delete([]byte("a")))

	v, err = cache.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)

	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)

	// base still untouched
	v, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	has, err = base.Has([]byte("c"))
	require.NoError(t, err)
	assert.False(t, has)

	// after Write the base reflects the cache
	require.NoError(t, cache.Write())

	has, err = base.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
	v, err = base.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)
}

func TestBTreeCacheDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	cache.Discard()

	v, err := base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	has, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)
}

func consume(t testing.TB, itr Iterator) []Model {
	t.Helper()
	defer itr.Release()

	var out []Model
	for {
		key, value, err := itr.Next()
		if errors.ErrIteratorDone.Is(err) {
			return out
		}
		require.NoError(t, err)
		out = append(out, Model{Key: key, Value: value})
	}
}

func TestBTreeCacheIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))
	require.NoError(t, base.Set([]byte("e"), []byte("5")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Set([]byte("c"), []byte("3!")))
	require.NoError(t, cache.Delete([]byte("e")))

	itr, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	got := consume(t, itr)

	want := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("3!")},
	}
	assert.Equal(t, want, got)
}

func TestBTreeCacheReverseIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))

	itr, err := cache.ReverseIterator(nil, nil)
	require.NoError(t, err)
	got := consume(t, itr)

	want := []Model{
		{Key: []byte("c"), Value: []byte("3")},
		{Key: []byte("b"), Value: []byte("2")},
	}
	assert.Equal(t, want, got)
}

func TestBTreeCacheIteratorRange(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, base.Set([]byte(k), []byte(k)))
	}

	itr, err := base.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	got := consume(t, itr)

	want := []Model{
		{Key: []byte("b"), Value: []byte("b")},
		{Key: []byte("c"), Value: []byte("c")},
	}
	assert.Equal(t, want, got)
}

func TestEmptyIterator(t *testing.T) {
	itr, err := EmptyKVStore{}.Iterator(nil, nil)
	require.NoError(t, err)
	_, _, err = itr.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
}
