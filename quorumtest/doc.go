/*
Package quorumtest provides test doubles for the engine's external
collaborators: the authenticator, the ledger executor, the guard hook,
the delegated signer, the fee settlement and an event recorder.

The doubles are deterministic and record every interaction, so tests
can assert on exactly what crossed the trust boundary. The executor
double supports a hook override for simulating hostile behavior such as
reentrant calls back into the engine.
*/
package quorumtest
