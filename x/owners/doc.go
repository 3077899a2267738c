/*
Package owners implements the owner registry: the ordered set of
identities entitled to approve actions, together with the approval
threshold.

The registry is the invariant source of truth for "who may approve".
After setup and after every mutation the following holds:

	1 <= threshold <= number of owners

and no owner ever equals the sentinel, the engine's own identity, or
another owner.

All mutating operations are meant to be called through the engine's
self-authorized execution path only. The registry itself performs no
caller authentication; the engine does.
*/
package owners
