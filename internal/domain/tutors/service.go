package tutors

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"vet-clinic-records/internal/domain/authz"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidCPF   = errors.New("invalid cpf")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")

	// ErrTutorHasAnimals bloqueia a exclusão enquanto houver animais do tutor.
	ErrTutorHasAnimals = errors.New("tutor has animals")
)

type Service struct {
	repo    Repository
	animals AnimalLookup
	cache   Projection
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalLookup, cache Projection) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		cache:   cache,
		now:     time.Now,
	}
}

type RegisterInput struct {
	Name    string
	CPF     string
	Phone   string
	Email   string
	Address string
}

// Register valida e insere um tutor. Validação acontece antes de qualquer
// chamada ao store.
func (s *Service) Register(ctx context.Context, actor authz.Actor, in RegisterInput) (Tutor, error) {
	if !actor.Can(authz.CapCreateTutor) {
		return Tutor{}, ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < 2 {
		return Tutor{}, ErrInvalidInput
	}
	if len(OnlyDigits(in.Phone)) < 10 {
		return Tutor{}, ErrInvalidInput
	}
	cpf := strings.TrimSpace(in.CPF)
	if cpf != "" && !ValidCPF(cpf) {
		return Tutor{}, ErrInvalidCPF
	}

	now := s.now()
	t := Tutor{
		ID:        uuid.NewString(),
		Name:      name,
		CPF:       cpf,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Tutor{}, err
	}
	if s.cache != nil {
		s.cache.TutorSaved(t)
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Tutor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, actor authz.Actor) ([]Tutor, error) {
	if !actor.Can(authz.CapViewRoster) {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

// Exists expõe a resolução de tutor para outros módulos sem ciclo de imports.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type UpdateInput struct {
	// Ponteiros para update parcial: nil = não tocar.
	Name    *string
	CPF     *string
	Phone   *string
	Email   *string
	Address *string
}

// Update aplica um update parcial. Somente admin.
func (s *Service) Update(ctx context.Context, actor authz.Actor, id string, in UpdateInput) (Tutor, error) {
	if !actor.Can(authz.CapEdit) {
		return Tutor{}, ErrForbidden
	}

	t, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Tutor{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if utf8.RuneCountInString(name) < 2 {
			return Tutor{}, ErrInvalidInput
		}
		t.Name = name
	}
	if in.Phone != nil {
		if len(OnlyDigits(*in.Phone)) < 10 {
			return Tutor{}, ErrInvalidInput
		}
		t.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.CPF != nil {
		cpf := strings.TrimSpace(*in.CPF)
		if cpf != "" && !ValidCPF(cpf) {
			return Tutor{}, ErrInvalidCPF
		}
		t.CPF = cpf
	}
	if in.Email != nil {
		t.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		t.Address = strings.TrimSpace(*in.Address)
	}

	t.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, t); err != nil {
		return Tutor{}, err
	}
	if s.cache != nil {
		s.cache.TutorSaved(t)
	}
	return t, nil
}

// Delete exclui o tutor. Bloqueado enquanto houver animais apontando para
// ele; exclua (ou transfira) os animais primeiro.
func (s *Service) Delete(ctx context.Context, actor authz.Actor, id string) error {
	if !actor.Can(authz.CapDelete) {
		return ErrForbidden
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	has, err := s.animals.HasAnimals(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return ErrTutorHasAnimals
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.TutorDeleted(id)
	}
	return nil
}
