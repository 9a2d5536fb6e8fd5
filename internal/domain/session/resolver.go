package session

import (
	"context"
	"errors"
	"strings"

	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/sessions"
)

// Resolver decide qual das três identidades está ativa para um token:
// sessão limitada (atendente), sessão de admin no provedor, ou nenhuma.
//
// As duas fontes são consultadas em paralelo e a resolução só acontece
// depois que AMBAS respondem. A prioridade é fixa: a sessão limitada ganha
// mesmo quando o provedor também reconhece o token.
type Resolver struct {
	sessions sessions.Store
	provider auth.Provider // pode ser nil (modo dev: sem admins)
}

func NewResolver(store sessions.Store, provider auth.Provider) *Resolver {
	return &Resolver{
		sessions: store,
		provider: provider,
	}
}

type limitedResult struct {
	rec sessions.Record
	ok  bool
	err error
}

type adminResult struct {
	id auth.Identity
	ok bool
}

// Resolve computa a identidade ativa. Erro só quando o store de sessões
// falha de verdade; token desconhecido em ambas as fontes é anônimo.
func (r *Resolver) Resolve(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Anonymous(), nil
	}

	limCh := make(chan limitedResult, 1)
	admCh := make(chan adminResult, 1)

	go func() {
		rec, err := r.sessions.Load(ctx, token)
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				limCh <- limitedResult{}
				return
			}
			limCh <- limitedResult{err: err}
			return
		}
		limCh <- limitedResult{rec: rec, ok: true}
	}()

	go func() {
		if r.provider == nil {
			admCh <- adminResult{}
			return
		}
		id, err := r.provider.Verify(ctx, token)
		if err != nil {
			// token não reconhecido pelo provedor = ausência, não erro
			admCh <- adminResult{}
			return
		}
		admCh <- adminResult{id: id, ok: true}
	}()

	lim := <-limCh
	adm := <-admCh

	if lim.err != nil {
		return Identity{}, lim.err
	}

	if lim.ok {
		return Identity{
			Kind:   KindLimited,
			UserID: lim.rec.UserID,
			Name:   lim.rec.Name,
			Email:  lim.rec.Email,
		}, nil
	}
	if adm.ok {
		return Identity{
			Kind:   KindAdmin,
			UserID: adm.id.UserID,
			Name:   adm.id.Name,
			Email:  adm.id.Email,
		}, nil
	}
	return Anonymous(), nil
}
