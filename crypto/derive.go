package crypto

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/hkdf"

	"github.com/iov-one/quorum/errors"
)

// derivationInfo is the domain separation string for key derivation.
// Changing it invalidates every derived key.
const derivationInfo = "quorum/key/v1:"

// DerivePrivateKey deterministically derives a signing key from seed
// material. The label separates independent keys derived from the same
// seed, so one seed can back a whole owner set.
func DerivePrivateKey(seed []byte, label string) (*PrivateKey, error) {
	if len(seed) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "seed")
	}
	r := hkdf.New(sha256.New, seed, nil, []byte(derivationInfo+label))
	buf := make([]byte, 32)
	// rejection sample until the bytes form a valid scalar, which in
	// practice succeeds on the first read
	for i := 0; i < 128; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrapf(errors.ErrState, "derive: %v", err)
		}
		d := new(big.Int).SetBytes(buf)
		if d.Sign() > 0 && d.Cmp(btcec.S256().N) < 0 {
			key, _ := btcec.PrivKeyFromBytes(btcec.S256(), buf)
			return &PrivateKey{key: key}, nil
		}
	}
	return nil, errors.Wrap(errors.ErrState, "derive: exhausted candidates")
}
