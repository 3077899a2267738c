package sigs

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/quorum"
)

// digestVersion is the domain separation tag for action digests. Bump it
// when the preimage layout changes so old signatures can never satisfy a
// new layout.
var digestVersion = []byte("quorum/sign/v1")

// ActionDigest computes the deterministic fingerprint an owner signs to
// authorize an action. The preimage binds the network identifier, the
// engine instance and the nonce, so a signature is valid for exactly one
// action on one engine on one network. Every variable-length field is
// length-prefixed to keep the encoding unambiguous.
func ActionDigest(chainID string, engine quorum.Address, nonce int64, action []byte) []byte {
	h := sha256.New()
	h.Write(digestVersion)
	writeBytes(h, []byte(chainID))
	writeBytes(h, engine)
	writeInt(h, nonce)
	writeBytes(h, action)
	return h.Sum(nil)
}

func writeBytes(h interface{ Write([]byte) (int, error) }, raw []byte) {
	writeInt(h, int64(len(raw)))
	h.Write(raw)
}

func writeInt(h interface{ Write([]byte) (int, error) }, v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	h.Write(b[:])
}
