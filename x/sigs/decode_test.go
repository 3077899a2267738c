package sigs

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSlotDiscriminants(t *testing.T) {
	owner := quorum.RandomAddress()

	var b BundleBuilder
	bundle := b.PreApproved(owner).Delegated(owner, []byte("blob")).Build()

	slot, err := DecodeSlot(bundle, 0)
	require.NoError(t, err)
	assert.Equal(t, KindPreApproved, slot.Kind)
	assert.Equal(t, owner, slot.Signer)

	slot, err = DecodeSlot(bundle, 1)
	require.NoError(t, err)
	assert.Equal(t, KindDelegated, slot.Kind)
	assert.Equal(t, owner, slot.Signer)

	nested, err := NestedBlob(bundle, slot.BlobOffset, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), nested)
}

func TestDecodeSlotRejectsUnknownDiscriminant(t *testing.T) {
	for _, v := range []byte{2, 26, 35, 0xFF} {
		raw := make([]byte, SlotSize)
		raw[64] = v
		_, err := DecodeSlot(raw, 0)
		assert.True(t, ErrInvalidSignature.Is(err), "discriminant %d", v)
	}
}

func TestDecodeSlotRejectsDirtyPadding(t *testing.T) {
	owner := quorum.RandomAddress()
	var b BundleBuilder
	raw := b.PreApproved(owner).Build()

	// address words are right-aligned, the padding must stay zero
	raw[0] = 0xAA
	_, err := DecodeSlot(raw, 0)
	assert.True(t, ErrInvalidSignature.Is(err))
}

func TestDecodeSlotOutOfRange(t *testing.T) {
	raw := make([]byte, SlotSize)
	_, err := DecodeSlot(raw, 1)
	assert.True(t, ErrBundleTooShort.Is(err))
}
