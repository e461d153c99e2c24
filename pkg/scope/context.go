package scope

import (
	"context"

	"report-srv/internal/model"
)

// Manager verifies bearer tokens into identity payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadKey struct{}
type scopeKey struct{}

// SetPayloadToContext stores the token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext returns the token payload stored in the context.
func GetPayloadFromContext(ctx context.Context) Payload {
	if payload, ok := ctx.Value(payloadKey{}).(Payload); ok {
		return payload
	}
	return Payload{}
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the request scope stored in the context.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey{}).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}
