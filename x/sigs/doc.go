/*
Package sigs implements signature bundle verification against the owner
registry.

A bundle is a concatenation of fixed 65-byte slots, each carrying one
signature in (r, s, v) layout. The trailing v byte doubles as a kind
discriminant:

	v == 0       delegated signature, verified by an external signer
	v == 1       pre-approved digest, verified against stored records
	v in 27..30  plain recoverable signature over the raw digest
	v in 31..34  recoverable signature over the prefix-wrapped digest

Verification walks exactly threshold slots, resolves every slot to a
signer address, requires each signer to be a current owner and requires
the resolved signers to be in strictly ascending byte order. The
ordering rule makes duplicate detection linear and gives every approval
set a single canonical bundle encoding.
*/
package sigs
