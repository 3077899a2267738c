package orm

import (
	"encoding/binary"
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// sentinelKey is the reserved in-set marker forming the circular list.
// It is a single byte so it can never collide with a member address,
// which is always quorum.AddressLength bytes.
var sentinelKey = []byte{0x01}

// LinkedSet is a sentinel-linked ordered set of addresses, stored as an
// adjacency map: every entry maps a member to its successor, and the
// reserved sentinel entry marks both list start and end.
//
// Compared to storing the whole member list as a single value, this gives
// O(1) membership, O(1) insert at the head and O(1) removal when the
// predecessor is known, without rewriting an unbounded array on every
// mutation. Listing is O(n) by walking the successor chain.
//
// In this API a nil address stands for the sentinel, so the first member
// is the successor of nil and the last member points back at nil.
type LinkedSet struct {
	name   string
	prefix []byte
	size   []byte
}

// NewLinkedSet creates a linked set storing entries under the given
// bucket-style name. The member count is kept under a separate
// _n.<name> key so reading it does not require a list walk.
func NewLinkedSet(name string) LinkedSet {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal linked set: %s", name))
	}
	return LinkedSet{
		name:   name,
		prefix: append([]byte(name), ':'),
		size:   []byte("_n." + name),
	}
}

// Init writes the empty circular list (sentinel pointing at itself).
// It fails with ErrState when the set was initialized before, so a
// registry setup cannot silently run twice.
func (s LinkedSet) Init(db quorum.KVStore) error {
	ok, err := s.Initialized(db)
	if err != nil {
		return err
	}
	if ok {
		return errors.Wrapf(errors.ErrState, "%s already initialized", s.name)
	}
	if err := db.Set(s.dbKey(sentinelKey), sentinelKey); err != nil {
		return err
	}
	return s.setCount(db, 0)
}

// Initialized returns true if Init was called on this store before.
func (s LinkedSet) Initialized(db quorum.ReadOnlyKVStore) (bool, error) {
	return db.Has(s.dbKey(sentinelKey))
}

// Contains checks membership in O(1).
func (s LinkedSet) Contains(db quorum.ReadOnlyKVStore, member quorum.Address) (bool, error) {
	if err := member.Validate(); err != nil {
		return false, nil
	}
	return db.Has(s.dbKey(member))
}

// Count returns the number of members, not counting the sentinel.
func (s LinkedSet) Count(db quorum.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.size)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

// Successor returns the member following prev in list order. A nil prev
// addresses the sentinel, so Successor(db, nil) is the first member. A
// nil result means prev is the last member. It fails with ErrNotFound
// when prev is not part of the set.
func (s LinkedSet) Successor(db quorum.ReadOnlyKVStore, prev quorum.Address) (quorum.Address, error) {
	raw, err := db.Get(s.dbKey(s.nodeKey(prev)))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "%s: no member %s", s.name, prev)
	}
	return s.asMember(raw), nil
}

// InsertFront adds a new member right after the sentinel. It fails with
// ErrDuplicate when the member is already present.
func (s LinkedSet) InsertFront(db quorum.KVStore, member quorum.Address) error {
	if err := member.Validate(); err != nil {
		return err
	}
	switch ok, err := s.Contains(db, member); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrDuplicate, "%s: member %s", s.name, member)
	}

	first, err := s.Successor(db, nil)
	if err != nil {
		return err
	}
	if err := db.Set(s.dbKey(member), s.nodeKey(first)); err != nil {
		return err
	}
	if err := db.Set(s.dbKey(sentinelKey), []byte(member)); err != nil {
		return err
	}
	return s.bumpCount(db, 1)
}

// RemoveAfter unlinks and returns the member following prev. A nil prev
// removes the first member. It fails with ErrEmpty when prev is the last
// entry so there is nothing to remove.
func (s LinkedSet) RemoveAfter(db quorum.KVStore, prev quorum.Address) (quorum.Address, error) {
	removed, err := s.Successor(db, prev)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "%s: nothing after %s", s.name, prev)
	}
	next, err := s.Successor(db, removed)
	if err != nil {
		return nil, err
	}
	if err := db.Set(s.dbKey(s.nodeKey(prev)), s.nodeKey(next)); err != nil {
		return nil, err
	}
	if err := db.Delete(s.dbKey(removed)); err != nil {
		return nil, err
	}
	if err := s.bumpCount(db, -1); err != nil {
		return nil, err
	}
	return removed, nil
}

// ReplaceAfter atomically swaps the member following prev for the given
// replacement, keeping the list position and count unchanged. It returns
// the member that was unlinked.
func (s LinkedSet) ReplaceAfter(db quorum.KVStore, prev, replacement quorum.Address) (quorum.Address, error) {
	if err := replacement.Validate(); err != nil {
		return nil, err
	}
	switch ok, err := s.Contains(db, replacement); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrapf(errors.ErrDuplicate, "%s: member %s", s.name, replacement)
	}

	old, err := s.Successor(db, prev)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "%s: nothing after %s", s.name, prev)
	}
	next, err := s.Successor(db, old)
	if err != nil {
		return nil, err
	}
	if err := db.Set(s.dbKey(replacement), s.nodeKey(next)); err != nil {
		return nil, err
	}
	if err := db.Set(s.dbKey(s.nodeKey(prev)), []byte(replacement)); err != nil {
		return nil, err
	}
	if err := db.Delete(s.dbKey(old)); err != nil {
		return nil, err
	}
	return old, nil
}

// List walks the successor chain and returns all members in list order.
func (s LinkedSet) List(db quorum.ReadOnlyKVStore) ([]quorum.Address, error) {
	count, err := s.Count(db)
	if err != nil {
		return nil, err
	}
	members, _, err := s.walk(db, nil, count)
	return members, err
}

// ListPage returns up to limit members starting after the given cursor
// (nil for the list head), together with the cursor for the next page.
// A nil next cursor means the listing is complete.
func (s LinkedSet) ListPage(db quorum.ReadOnlyKVStore, start quorum.Address, limit int) ([]quorum.Address, quorum.Address, error) {
	if limit < 1 {
		return nil, nil, errors.Wrap(errors.ErrInput, "page size must be positive")
	}
	return s.walk(db, start, int64(limit))
}

func (s LinkedSet) walk(db quorum.ReadOnlyKVStore, start quorum.Address, limit int64) ([]quorum.Address, quorum.Address, error) {
	members := make([]quorum.Address, 0, limit)
	cursor := start
	for int64(len(members)) < limit {
		next, err := s.Successor(db, cursor)
		if err != nil {
			return nil, nil, err
		}
		if next == nil {
			return members, nil, nil
		}
		members = append(members, next)
		cursor = next
	}
	// peek whether anything is left, so the last page reports no cursor
	next, err := s.Successor(db, cursor)
	if err != nil {
		return nil, nil, err
	}
	if next == nil {
		return members, nil, nil
	}
	return members, cursor, nil
}

func (s LinkedSet) bumpCount(db quorum.KVStore, diff int64) error {
	count, err := s.Count(db)
	if err != nil {
		return err
	}
	return s.setCount(db, count+diff)
}

func (s LinkedSet) setCount(db quorum.KVStore, count int64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(count))
	return db.Set(s.size, raw)
}

// nodeKey maps the nil address onto the sentinel entry.
func (s LinkedSet) nodeKey(member quorum.Address) []byte {
	if member == nil {
		return sentinelKey
	}
	return []byte(member)
}

// asMember maps the sentinel entry back onto the nil address.
func (s LinkedSet) asMember(raw []byte) quorum.Address {
	if len(raw) != quorum.AddressLength {
		return nil
	}
	return quorum.Address(raw)
}

func (s LinkedSet) dbKey(key []byte) []byte {
	l := len(s.prefix)
	out := make([]byte, l+len(key))
	copy(out, s.prefix)
	copy(out[l:], key)
	return out
}
