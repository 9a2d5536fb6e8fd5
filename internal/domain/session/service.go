package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/users"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/sessions"

	"github.com/google/uuid"
)

// ErrInvalidCredentials cobre os dois caminhos de login com a mesma mensagem,
// para não vazar quais contas existem.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users    *users.Service
	sessions sessions.Store
	provider auth.Provider // pode ser nil (modo dev)

	now      func() time.Time
	newToken func() string
}

func NewService(usersSvc *users.Service, store sessions.Store, provider auth.Provider) *Service {
	return &Service{
		users:    usersSvc,
		sessions: store,
		provider: provider,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

type LoginResult struct {
	Token    string
	Identity Identity
}

// Login tenta primeiro a conta limitada; só se essa busca reportar
// "sem correspondência" é que o provedor de admin é tentado com as mesmas
// credenciais. Ordem deliberada: uma conta limitada sombreia uma conta de
// admin com o mesmo par email/senha.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := s.users.Authenticate(ctx, email, password)
	if err == nil {
		token := s.newToken()
		rec := sessions.Record{
			UserID:    u.ID,
			Email:     u.Email,
			Name:      u.Name,
			CreatedAt: s.now(),
		}
		if err := s.sessions.Save(ctx, token, rec); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{
			Token: token,
			Identity: Identity{
				Kind:   KindLimited,
				UserID: u.ID,
				Name:   u.Name,
				Email:  u.Email,
			},
		}, nil
	}
	if !errors.Is(err, users.ErrNoMatch) {
		return LoginResult{}, err
	}

	if s.provider == nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	sess, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	return LoginResult{
		Token: sess.AccessToken,
		Identity: Identity{
			Kind:   KindAdmin,
			UserID: sess.Identity.UserID,
			Name:   sess.Identity.Name,
			Email:  sess.Identity.Email,
		},
	}, nil
}

// Logout apaga a fonte de identidade correspondente ao token. A próxima
// resolução parte do zero; não há teardown incremental de estado.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	_, err := s.sessions.Load(ctx, token)
	if err == nil {
		return s.sessions.Delete(ctx, token)
	}
	if !errors.Is(err, sessions.ErrNotFound) {
		return err
	}

	if s.provider != nil {
		return s.provider.SignOut(ctx, token)
	}
	return nil
}
