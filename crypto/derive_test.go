package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePrivateKeyIsDeterministic(t *testing.T) {
	seed := []byte("correct horse battery staple")

	a, err := DerivePrivateKey(seed, "owner-0")
	require.NoError(t, err)
	b, err := DerivePrivateKey(seed, "owner-0")
	require.NoError(t, err)
	assert.Equal(t, a.Address(), b.Address())
	assert.Equal(t, a.PublicKey(), b.PublicKey())
}

func TestDerivePrivateKeySeparation(t *testing.T) {
	seed := []byte("correct horse battery staple")

	a, err := DerivePrivateKey(seed, "owner-0")
	require.NoError(t, err)
	b, err := DerivePrivateKey(seed, "owner-1")
	require.NoError(t, err)
	assert.NotEqual(t, a.Address(), b.Address(), "labels must separate keys")

	c, err := DerivePrivateKey([]byte("another seed"), "owner-0")
	require.NoError(t, err)
	assert.NotEqual(t, a.Address(), c.Address(), "seeds must separate keys")
}

func TestDerivePrivateKeyRejectsEmptySeed(t *testing.T) {
	_, err := DerivePrivateKey(nil, "owner-0")
	assert.Error(t, err)
}

func TestDerivedKeyCanSign(t *testing.T) {
	key, err := DerivePrivateKey([]byte("seed"), "signer")
	require.NoError(t, err)

	digest := make([]byte, 32)
	copy(digest, "hello")
	sig, err := key.Sign(digest)
	require.NoError(t, err)

	got, err := RecoverAddress(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), got)
}
