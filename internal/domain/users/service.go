package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/authz"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	// ErrNoMatch cobre qualquer falha de autenticação (email inexistente,
	// senha errada, conta inativa) sem distinguir o motivo.
	ErrNoMatch = errors.New("no matching user")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Authenticate é o caminho de login da conta limitada: email + senha + ativo.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrNoMatch
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNoMatch
		}
		return User{}, err
	}
	if !u.Active {
		return User{}, ErrNoMatch
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrNoMatch
	}
	return u, nil
}

type CreateInput struct {
	Email    string
	Name     string
	Password string
}

// Create provisiona uma conta de atendente. Somente admin.
func (s *Service) Create(ctx context.Context, actor authz.Actor, in CreateInput) (User, error) {
	if !actor.Can(authz.CapEdit) {
		return User{}, ErrForbidden
	}

	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidInput
	}
	if name == "" || len(in.Password) < 6 {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Deactivate desliga a conta sem apagar o registro.
func (s *Service) Deactivate(ctx context.Context, actor authz.Actor, id string) (User, error) {
	if !actor.Can(authz.CapEdit) {
		return User{}, ErrForbidden
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if !u.Active {
		return u, nil
	}

	u.Active = false
	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, actor authz.Actor) ([]User, error) {
	if !actor.Can(authz.CapEdit) {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
