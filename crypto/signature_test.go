package crypto

import (
	"crypto/sha256"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndRecover(t *testing.T) {
	key := GenPrivateKey()
	digest := sha256.Sum256([]byte("transfer 5 to carl"))

	sig, err := key.Sign(digest[:])
	require.NoError(t, err)

	addr, err := RecoverAddress(digest[:], sig)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), addr)
}

func TestRecoverWrongDigestResolvesOtherSigner(t *testing.T) {
	key := GenPrivateKey()
	digest := sha256.Sum256([]byte("original"))
	other := sha256.Sum256([]byte("tampered"))

	sig, err := key.Sign(digest[:])
	require.NoError(t, err)

	// recovery over a different digest either fails or resolves to a
	// different identity, never to the original signer
	addr, err := RecoverAddress(other[:], sig)
	if err == nil {
		assert.False(t, key.Address().Equals(addr))
	}
}

func TestPrefixedSignatureIsNotInterchangeable(t *testing.T) {
	key := GenPrivateKey()
	digest := sha256.Sum256([]byte("action"))

	sig, err := key.SignPrefixed(digest[:])
	require.NoError(t, err)

	// valid against the prefixed digest
	addr, err := RecoverAddress(PrefixDigest(digest[:]), sig)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), addr)

	// not valid against the raw digest
	addr, err = RecoverAddress(digest[:], sig)
	if err == nil {
		assert.False(t, key.Address().Equals(addr))
	}
}

func TestSignatureValidate(t *testing.T) {
	valid := Signature{V: 27, R: make([]byte, 32), S: make([]byte, 32)}
	assert.NoError(t, valid.Validate())

	cases := map[string]Signature{
		"short r":           {V: 27, R: make([]byte, 31), S: make([]byte, 32)},
		"short s":           {V: 27, R: make([]byte, 32), S: make([]byte, 16)},
		"recovery too low":  {V: 26, R: make([]byte, 32), S: make([]byte, 32)},
		"recovery too high": {V: 31, R: make([]byte, 32), S: make([]byte, 32)},
	}
	for name, sig := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.ErrInput.Is(sig.Validate()))
		})
	}
}

func TestRecoverRejectsBadDigestSize(t *testing.T) {
	key := GenPrivateKey()
	digest := sha256.Sum256([]byte("x"))
	sig, err := key.Sign(digest[:])
	require.NoError(t, err)

	_, err = RecoverAddress(digest[:10], sig)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestAddressesAreWellFormed(t *testing.T) {
	addr := GenPrivateKey().Address()
	assert.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), quorum.AddressLength)
}
