package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitAndReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "quorum-iavl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewCommitStore(dir, "state")
	require.NoError(t, err)
	require.NoError(t, db.LoadLatestVersion())

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("threshold"), []byte{2}))
	require.NoError(t, cache.Write())

	id, err := db.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	v, err := db.Get([]byte("threshold"))
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, v)

	latest, err := db.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest.Version)
	assert.NotEmpty(t, latest.Hash)
}

func TestCacheWrapDiscardLeavesTreeUntouched(t *testing.T) {
	db := MemCommitStore()
	require.NoError(t, db.LoadLatestVersion())

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	cache.Discard()

	v, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestIterationOrder(t *testing.T) {
	db := MemCommitStore()
	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	require.NoError(t, cache.Set([]byte("c"), []byte("3")))
	require.NoError(t, cache.Write())

	itr, err := treeStore{tree: db.tree}.Iterator(nil, nil)
	require.NoError(t, err)
	defer itr.Release()

	var keys []string
	for {
		k, _, err := itr.Next()
		if err != nil {
			break
		}
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
