package engine

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// BucketName holds the transaction records, keyed by their 8-byte
// big-endian id.
const BucketName = "txns"

// approvalPrefix scopes the per (transaction, owner) approval markers.
// Keeping them outside the transaction record lets an approval be
// revoked without rewriting the record and keeps the record size fixed.
var approvalPrefix = []byte("_ap." + BucketName + ":")

// Ledger is the durable store of proposed transactions and their
// approval records. Entries are never deleted.
type Ledger struct {
	bucket orm.Bucket
	seq    orm.Sequence
}

// NewLedger returns a ledger over the txns bucket.
func NewLedger() Ledger {
	return Ledger{
		bucket: orm.NewBucket(BucketName, &Transaction{}),
		seq:    orm.NewSequence(BucketName, "id"),
	}
}

// Create allocates the next transaction id and persists the record
// under it. Ids are monotonically increasing, starting at 1.
func (l Ledger) Create(db quorum.KVStore, tx *Transaction) (int64, error) {
	seq := l.seq
	id, err := seq.NextInt(db)
	if err != nil {
		return 0, err
	}
	return id, l.Save(db, id, tx)
}

// Get loads a transaction. It fails with ErrUnknownTransaction for an
// id that was never allocated.
func (l Ledger) Get(db quorum.ReadOnlyKVStore, id int64) (*Transaction, error) {
	obj, err := l.bucket.Get(db, orm.EncodeSequence(id))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(ErrUnknownTransaction, "id %d", id)
	}
	tx, ok := obj.Value().(*Transaction)
	if !ok {
		return nil, errors.Wrapf(errors.ErrDatabase, "invalid type %T", obj.Value())
	}
	return tx, nil
}

// Save writes the transaction record under the given id.
func (l Ledger) Save(db quorum.KVStore, id int64, tx *Transaction) error {
	return l.bucket.Save(db, orm.NewSimpleObj(orm.EncodeSequence(id), tx))
}

// LatestID returns the most recently allocated transaction id, zero
// when nothing was proposed yet.
func (l Ledger) LatestID(db quorum.ReadOnlyKVStore) (int64, error) {
	seq := l.seq
	id, _, err := seq.Latest(db)
	return id, err
}

// HasApproval checks the per (transaction, owner) approval marker.
func (l Ledger) HasApproval(db quorum.ReadOnlyKVStore, id int64, owner quorum.Address) (bool, error) {
	return db.Has(approvalKey(id, owner))
}

// SetApproval records the owner's approval of the transaction.
func (l Ledger) SetApproval(db quorum.KVStore, id int64, owner quorum.Address) error {
	return db.Set(approvalKey(id, owner), []byte{0x01})
}

// ClearApproval removes the owner's approval of the transaction.
func (l Ledger) ClearApproval(db quorum.KVStore, id int64, owner quorum.Address) error {
	return db.Delete(approvalKey(id, owner))
}

func approvalKey(id int64, owner quorum.Address) []byte {
	key := make([]byte, 0, len(approvalPrefix)+8+len(owner))
	key = append(key, approvalPrefix...)
	key = append(key, orm.EncodeSequence(id)...)
	key = append(key, owner...)
	return key
}
