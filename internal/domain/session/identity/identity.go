// Package identity contém os tipos de identidade de sessão e o acesso ao
// context do request. Fica abaixo de session para que handlers de domínio
// (inclusive users, do qual session depende) possam ler a sessão ativa sem
// criar ciclo de import.
package identity

import (
	"context"

	"vet-clinic-records/internal/domain/authz"
)

// Kind é a variante da identidade resolvida. União etiquetada em vez de dois
// flags anuláveis: o estado "ambos presentes" não é representável.
type Kind string

const (
	KindAnonymous Kind = "anonymous"
	KindLimited   Kind = "limited"
	KindAdmin     Kind = "admin"
)

// Identity é a identidade ativa da sessão.
type Identity struct {
	Kind   Kind
	UserID string
	Name   string
	Email  string
}

func Anonymous() Identity {
	return Identity{Kind: KindAnonymous}
}

func (i Identity) Authenticated() bool {
	return i.Kind == KindLimited || i.Kind == KindAdmin
}

// Role mapeia a variante para o papel de autorização.
func (i Identity) Role() authz.Role {
	switch i.Kind {
	case KindAdmin:
		return authz.RoleAdmin
	case KindLimited:
		return authz.RoleLimited
	default:
		return ""
	}
}

// Actor devolve o contexto de autorização desta identidade.
func (i Identity) Actor() authz.Actor {
	return authz.Actor{UserID: i.UserID, Role: i.Role()}
}

// Context é o contexto de sessão propagado pelo middleware a cada request.
type Context struct {
	Identity Identity
	Token    string
}

type ctxKey string

const contextKey ctxKey = "session"

// NewContext guarda o contexto de sessão no context do request.
func NewContext(ctx context.Context, sc Context) context.Context {
	return context.WithValue(ctx, contextKey, sc)
}

// FromContext devolve o contexto de sessão do request.
func FromContext(ctx context.Context) (Context, bool) {
	v := ctx.Value(contextKey)
	if v == nil {
		return Context{}, false
	}
	s, ok := v.(Context)
	return s, ok
}
