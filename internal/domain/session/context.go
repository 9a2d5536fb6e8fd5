package session

import (
	"context"

	"vet-clinic-records/internal/domain/session/identity"
)

// NewContext guarda o contexto de sessão no context do request.
func NewContext(ctx context.Context, sc Context) context.Context {
	return identity.NewContext(ctx, sc)
}

// FromContext devolve o contexto de sessão do request.
func FromContext(ctx context.Context) (Context, bool) {
	return identity.FromContext(ctx)
}
