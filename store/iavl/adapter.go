// Package iavl provides a durable CommitKVStore on top of a
// merkleized iavl tree with a goleveldb backend.
//
// The engine treats this store as the authorization source of truth:
// owner and module registries, the transaction ledger and the nonce all
// survive a process restart through it.
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
)

// the iavl node cache size, same order of magnitude the registries
// are expected to hold
const cacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with a leveldb disk backing under
// the given directory. The database name determines the file names used.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &CommitStore{
		tree: iavl.NewMutableTree(db, cacheSize),
	}, nil
}

// MemCommitStore creates a commit store without disk backing.
// Useful for tests that exercise the commit flow.
func MemCommitStore() *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(dbm.NewMemDB(), cacheSize),
	}
}

// Get returns the value stored under given key, nil if missing.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.Get(key)
	return value, nil
}

// CacheWrap returns a btree scratch-pad that writes back into the
// working tree. Call Commit afterwards to persist a new version.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	adapter := treeStore{tree: s.tree}
	return store.NewBTreeCacheWrap(adapter, adapter.NewBatch(), nil)
}

// Commit saves the next version of the working tree to disk, and
// returns its version and merkle root.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// treeStore adapts the mutable iavl tree to the store interfaces used
// by the btree cache wrap.
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeStore{}

func (t treeStore) Get(key []byte) ([]byte, error) {
	_, value := t.tree.Get(key)
	return value, nil
}

func (t treeStore) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

func (t treeStore) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

func (t treeStore) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// Iterator over a domain of keys in ascending order. End is exclusive.
// The items are materialized eagerly, which is fine for the bounded
// domains (bucket prefixes) the engine iterates over.
func (t treeStore) Iterator(start, end []byte) (store.Iterator, error) {
	var res []store.Model
	t.tree.IterateRange(start, end, true, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (t treeStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	var res []store.Model
	t.tree.IterateRange(start, end, false, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res), nil
}

func (t treeStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(t)
}
