/*
Package quorum defines the types shared by every package of the quorum
authorization engine.

Quorum is a multi-signature authorization engine: a group of registered
owners collectively authorizes actions only after a configurable number
of independent approvals is reached. The root package holds the identity
type used to key owners, modules and execution targets, together with
the key-value storage interfaces every registry persists through.

The interesting parts live below:

	errors     stable, coded errors that callers can branch on
	store      cacheable key-value stores, with a durable iavl backend
	orm        buckets, sequences and the sentinel-linked set
	crypto     secp256k1 signature recovery
	x/owners   the owner registry and threshold invariants
	x/modules  the lower-trust module registry
	x/sigs     signature bundle decoding and verification
	x/engine   the propose/approve/execute state machine
*/
package quorum
