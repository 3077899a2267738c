package owners

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// SetName is the linked set holding the owner entries.
const SetName = "owners"

// thresholdKey stores the 8-byte big-endian threshold, next to the
// owner set entries.
var thresholdKey = []byte("_t." + SetName)

// Registry maintains the ordered owner set and the approval threshold.
type Registry struct {
	set orm.LinkedSet
	// self is the engine's own identity, which must never become an
	// owner as that would let the engine approve its own actions.
	self quorum.Address
}

// NewRegistry returns a registry bound to the given engine identity.
func NewRegistry(self quorum.Address) Registry {
	return Registry{
		set:  orm.NewLinkedSet(SetName),
		self: self,
	}
}

// Setup initializes the registry with the given owners in input order
// and the given threshold. It is a one-time operation and fails with
// ErrAlreadyInitialized on any subsequent call.
func (r Registry) Setup(db quorum.KVStore, owners []quorum.Address, threshold int64) error {
	switch ok, err := r.set.Initialized(db); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(ErrAlreadyInitialized, SetName)
	}
	if threshold < 1 || threshold > int64(len(owners)) {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d owners", threshold, len(owners))
	}
	if err := r.set.Init(db); err != nil {
		return err
	}
	// insert back to front so the list reads in input order; duplicate
	// detection is by set membership, so unsorted input is fine
	for i := len(owners) - 1; i >= 0; i-- {
		if err := r.checkNewOwner(db, owners[i]); err != nil {
			return err
		}
		if err := r.set.InsertFront(db, owners[i]); err != nil {
			return err
		}
	}
	return r.setThreshold(db, threshold)
}

// AddOwner inserts a new owner at the head of the list and updates the
// threshold. Pass the current threshold to keep it unchanged.
func (r Registry) AddOwner(db quorum.KVStore, owner quorum.Address, newThreshold int64) error {
	if err := r.checkNewOwner(db, owner); err != nil {
		return err
	}
	if err := r.set.InsertFront(db, owner); err != nil {
		return err
	}
	return r.ChangeThreshold(db, newThreshold)
}

// RemoveOwner unlinks the owner following prev (nil prev for the list
// head) and updates the threshold. A zero newThreshold keeps the current
// threshold, lowered to the remaining owner count if it would otherwise
// exceed it.
func (r Registry) RemoveOwner(db quorum.KVStore, prev, owner quorum.Address, newThreshold int64) error {
	if err := r.checkPredecessor(db, prev, owner); err != nil {
		return err
	}
	count, err := r.set.Count(db)
	if err != nil {
		return err
	}
	remaining := count - 1

	if newThreshold == 0 {
		current, err := r.Threshold(db)
		if err != nil {
			return err
		}
		newThreshold = current
		if newThreshold > remaining {
			newThreshold = remaining
		}
	}
	if remaining < newThreshold {
		return errors.Wrapf(ErrQuorumUnreachable, "%d owners left, threshold %d", remaining, newThreshold)
	}
	if _, err := r.set.RemoveAfter(db, prev); err != nil {
		return err
	}
	return r.ChangeThreshold(db, newThreshold)
}

// SwapOwner atomically replaces the owner following prev with a new one,
// keeping list position, owner count and threshold unchanged.
func (r Registry) SwapOwner(db quorum.KVStore, prev, old, new quorum.Address) error {
	if err := r.checkNewOwner(db, new); err != nil {
		return err
	}
	if err := r.checkPredecessor(db, prev, old); err != nil {
		return err
	}
	_, err := r.set.ReplaceAfter(db, prev, new)
	return err
}

// ChangeThreshold sets a new approval threshold within [1, ownerCount].
func (r Registry) ChangeThreshold(db quorum.KVStore, threshold int64) error {
	count, err := r.set.Count(db)
	if err != nil {
		return err
	}
	if threshold < 1 || threshold > count {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d owners", threshold, count)
	}
	return r.setThreshold(db, threshold)
}

// IsOwner checks membership in O(1).
func (r Registry) IsOwner(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	return r.set.Contains(db, a)
}

// Owners returns all owners in list order.
func (r Registry) Owners(db quorum.ReadOnlyKVStore) ([]quorum.Address, error) {
	return r.set.List(db)
}

// Count returns the number of registered owners.
func (r Registry) Count(db quorum.ReadOnlyKVStore) (int64, error) {
	return r.set.Count(db)
}

// Threshold returns the current approval threshold. It is zero only
// before setup.
func (r Registry) Threshold(db quorum.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(thresholdKey)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func (r Registry) setThreshold(db quorum.KVStore, threshold int64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(threshold))
	return db.Set(thresholdKey, raw)
}

// checkNewOwner validates a candidate: proper size, not the engine
// identity, not registered yet. The sentinel can never pass because it
// is not a valid address.
func (r Registry) checkNewOwner(db quorum.ReadOnlyKVStore, owner quorum.Address) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidOwner, "%s", owner)
	}
	if owner.Equals(r.self) {
		return errors.Wrap(ErrInvalidOwner, "engine identity cannot own itself")
	}
	switch ok, err := r.set.Contains(db, owner); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(ErrInvalidOwner, "duplicate %s", owner)
	}
	return nil
}

// checkPredecessor ensures owner is a member and directly follows prev.
func (r Registry) checkPredecessor(db quorum.ReadOnlyKVStore, prev, owner quorum.Address) error {
	switch ok, err := r.set.Contains(db, owner); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(ErrInvalidOwner, "not an owner: %s", owner)
	}
	next, err := r.set.Successor(db, prev)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrPredecessorMismatch, "unknown predecessor %s", prev)
		}
		return err
	}
	if !owner.Equals(next) {
		return errors.Wrapf(ErrPredecessorMismatch, "%s does not precede %s", prev, owner)
	}
	return nil
}
