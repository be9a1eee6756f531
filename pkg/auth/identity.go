package auth

import "context"

// Identity is the per-request auth context resolved by the Identify
// middleware: who is calling, and which tracking session they currently
// have selected. Handlers read only this struct — there is no global
// mutable auth state.
type Identity struct {
	Email            string
	CurrentSessionID string
}

type identityKey struct{}

// WithIdentity stores the resolved identity in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the resolved identity from ctx.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
