package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// PrivateKey wraps a secp256k1 key for signing. Outside of tests and
// client tooling the engine itself never touches private keys, it only
// recovers public material from signatures.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// GenPrivateKey creates a new random private key.
func GenPrivateKey() *PrivateKey {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	return &PrivateKey{key: key}
}

// PublicKey returns the compressed serialization of the public key.
func (k *PrivateKey) PublicKey() []byte {
	return k.key.PubKey().SerializeCompressed()
}

// Address returns the address this key signs for.
func (k *PrivateKey) Address() quorum.Address {
	return PubKeyAddress(k.PublicKey())
}

// Sign produces a recoverable signature over a 32-byte digest.
func (k *PrivateKey) Sign(digest []byte) (Signature, error) {
	compact, err := btcec.SignCompact(btcec.S256(), k.key, digest, false)
	if err != nil {
		return Signature{}, errors.Wrapf(errors.ErrInput, "sign: %v", err)
	}
	return Signature{
		V: compact[0],
		R: compact[1:33],
		S: compact[33:],
	}, nil
}

// SignPrefixed signs the prefix-wrapped form of the digest, the way a
// generic message signer would.
func (k *PrivateKey) SignPrefixed(digest []byte) (Signature, error) {
	return k.Sign(PrefixDigest(digest))
}
