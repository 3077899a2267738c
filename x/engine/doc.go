/*
Package engine implements the authorization engine: the state machine
that turns individual owner approvals into executed actions.

A transaction moves through propose, approve and execute. Approvals are
counted per owner with revocation possible until execution; once the
count reaches the registry threshold the transaction runs through the
optional guard hook and the external ledger executor. Executed
transactions are final, failed executions stay retryable.

Two more execution paths exist beside the ledger: a direct single shot
path authorized by a signature bundle over a nonce bound digest, and a
module path where registered delegate callers execute without quorum.
All three run through the guard hook.

Self administration (owner and module set changes, threshold changes,
signed message records) is not callable directly. It is encoded as an
AdminMsg payload in a transaction targeting the engine's own address,
so it requires the same quorum as any other action.
*/
package engine
