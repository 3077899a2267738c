package quorumtest

import (
	"context"

	"github.com/iov-one/quorum"
)

type ctxKey string

// CtxAuth is an authenticator reading the caller identity straight from
// the context. Tests control the identity per call.
type CtxAuth struct {
	Key string
}

// SetIdentity returns a context carrying the given caller.
func (a CtxAuth) SetIdentity(ctx context.Context, caller quorum.Address) context.Context {
	return context.WithValue(ctx, ctxKey(a.Key), caller)
}

// Identity returns the caller stored in the context, nil when unset.
func (a CtxAuth) Identity(ctx context.Context) quorum.Address {
	caller, _ := ctx.Value(ctxKey(a.Key)).(quorum.Address)
	return caller
}
