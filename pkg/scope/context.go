package scope

import (
	"context"

	"fridge-inventory/internal/model"
)

type scopeKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok
}
