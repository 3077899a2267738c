package store

import "github.com/iov-one/quorum"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = quorum.ReadOnlyKVStore
type KVStore = quorum.KVStore
type SetDeleter = quorum.SetDeleter
type Batch = quorum.Batch
type Iterator = quorum.Iterator
type CacheableKVStore = quorum.CacheableKVStore
type KVCacheWrap = quorum.KVCacheWrap
type CommitKVStore = quorum.CommitKVStore
type CommitID = quorum.CommitID

// Model groups a key-value pair read from a store.
type Model struct {
	Key   []byte
	Value []byte
}
