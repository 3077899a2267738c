package engine

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerLifecycle(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()

	_, err := l.Get(db, 1)
	assert.True(t, ErrUnknownTransaction.Is(err))

	tx := &Transaction{
		Kind:    CallKindCall,
		Target:  quorum.RandomAddress(),
		Value:   42,
		Payload: []byte("transfer"),
	}
	id, err := l.Create(db, tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "ids start at one")

	loaded, err := l.Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, tx.Target, loaded.Target)
	assert.Equal(t, tx.Payload, loaded.Payload)
	assert.Equal(t, uint64(42), loaded.Value)

	loaded.Approvals = 2
	loaded.Executed = true
	require.NoError(t, l.Save(db, id, loaded))
	loaded, err = l.Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Approvals)
	assert.True(t, loaded.Executed)

	id2, err := l.Create(db, tx.Copy())
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)
	latest, err := l.LatestID(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest)
}

func TestLedgerApprovalRecords(t *testing.T) {
	db := store.MemStore()
	l := NewLedger()
	owner, other := quorum.RandomAddress(), quorum.RandomAddress()

	ok, err := l.HasApproval(db, 1, owner)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.SetApproval(db, 1, owner))
	ok, err = l.HasApproval(db, 1, owner)
	require.NoError(t, err)
	assert.True(t, ok)

	// records are scoped per transaction and per owner
	ok, err = l.HasApproval(db, 2, owner)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = l.HasApproval(db, 1, other)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.ClearApproval(db, 1, owner))
	ok, err = l.HasApproval(db, 1, owner)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{Kind: CallKindCall, Target: quorum.RandomAddress()}
	assert.NoError(t, valid.Validate())

	cases := map[string]Transaction{
		"missing kind":   {Target: quorum.RandomAddress()},
		"unknown kind":   {Kind: 9, Target: quorum.RandomAddress()},
		"missing target": {Kind: CallKindCall},
		"short target":   {Kind: CallKindDelegate, Target: quorum.Address([]byte{0x01})},
	}
	for name, tx := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, tx.Validate())
		})
	}
}
