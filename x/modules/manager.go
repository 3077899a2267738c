package modules

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// SetName is the linked set holding the module entries.
const SetName = "modules"

// DefaultPageSize bounds a listing when the caller does not care.
const DefaultPageSize = 10

// Manager maintains the set of trusted delegate callers.
type Manager struct {
	set  orm.LinkedSet
	self quorum.Address
}

// NewManager returns a manager bound to the given engine identity.
func NewManager(self quorum.Address) Manager {
	return Manager{
		set:  orm.NewLinkedSet(SetName),
		self: self,
	}
}

// Init prepares the empty module set. Unlike the owner registry there is
// no one-time setup with members; modules are enabled one by one through
// the engine's self-authorized path.
func (m Manager) Init(db quorum.KVStore) error {
	return m.set.Init(db)
}

// EnableModule grants the module execution rights.
func (m Manager) EnableModule(db quorum.KVStore, module quorum.Address) error {
	if err := module.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidModule, "%s", module)
	}
	if module.Equals(m.self) {
		return errors.Wrap(ErrInvalidModule, "engine identity cannot be a module")
	}
	if err := m.set.InsertFront(db, module); err != nil {
		if errors.ErrDuplicate.Is(err) {
			return errors.Wrapf(ErrInvalidModule, "duplicate %s", module)
		}
		return err
	}
	return nil
}

// DisableModule revokes execution rights from the module following prev
// (nil prev for the list head).
func (m Manager) DisableModule(db quorum.KVStore, prev, module quorum.Address) error {
	switch ok, err := m.set.Contains(db, module); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(ErrInvalidModule, "not a module: %s", module)
	}
	next, err := m.set.Successor(db, prev)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrPredecessorMismatch, "unknown predecessor %s", prev)
		}
		return err
	}
	if !module.Equals(next) {
		return errors.Wrapf(ErrPredecessorMismatch, "%s does not precede %s", prev, module)
	}
	_, err = m.set.RemoveAfter(db, prev)
	return err
}

// IsModule checks membership in O(1). The sentinel identity can never
// pass, as it is not a valid address.
func (m Manager) IsModule(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	return m.set.Contains(db, a)
}

// ListModules returns up to pageSize modules starting after the given
// cursor (nil for the head), with the cursor for the next page. A nil
// next cursor means the listing is complete. Pagination keeps a single
// read bounded no matter how many modules are registered.
func (m Manager) ListModules(db quorum.ReadOnlyKVStore, start quorum.Address, pageSize int) ([]quorum.Address, quorum.Address, error) {
	return m.set.ListPage(db, start, pageSize)
}

// Count returns the number of enabled modules.
func (m Manager) Count(db quorum.ReadOnlyKVStore) (int64, error) {
	return m.set.Count(db)
}
