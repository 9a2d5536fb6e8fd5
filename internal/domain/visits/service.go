package visits

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/authz"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAnimalNotFound = errors.New("animal not found")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
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
	AnimalID     string
	Date         time.Time
	Veterinarian string
	Symptoms     string
	Diagnosis    string
	Treatment    string
	Medications  string
	Notes        string
	NextReturn   *time.Time
}

// Register cria um atendimento. Somente admin: o papel limitado nunca
// cria nem enxerga atendimentos.
func (s *Service) Register(ctx context.Context, actor authz.Actor, in RegisterInput) (Visit, error) {
	if !actor.Can(authz.CapCreateVisit) {
		return Visit{}, ErrForbidden
	}

	animalID := strings.TrimSpace(in.AnimalID)
	if animalID == "" ||
		in.Date.IsZero() ||
		strings.TrimSpace(in.Veterinarian) == "" ||
		strings.TrimSpace(in.Symptoms) == "" ||
		strings.TrimSpace(in.Diagnosis) == "" ||
		strings.TrimSpace(in.Treatment) == "" {
		return Visit{}, ErrInvalidInput
	}

	ok, err := s.animals.Exists(ctx, animalID)
	if err != nil {
		return Visit{}, err
	}
	if !ok {
		return Visit{}, ErrAnimalNotFound
	}

	now := s.now()
	v := Visit{
		ID:           uuid.NewString(),
		AnimalID:     animalID,
		Date:         in.Date,
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Symptoms:     strings.TrimSpace(in.Symptoms),
		Diagnosis:    strings.TrimSpace(in.Diagnosis),
		Treatment:    strings.TrimSpace(in.Treatment),
		Medications:  strings.TrimSpace(in.Medications),
		Notes:        strings.TrimSpace(in.Notes),
		NextReturn:   in.NextReturn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Visit{}, err
	}
	if s.cache != nil {
		s.cache.VisitSaved(v)
	}
	return v, nil
}

// ListByAnimal devolve o histórico (data desc). O papel limitado é barrado
// aqui mesmo que a UI deixe passar.
func (s *Service) ListByAnimal(ctx context.Context, actor authz.Actor, animalID string) ([]Visit, error) {
	if !actor.Can(authz.CapViewVisits) {
		return nil, ErrForbidden
	}
	return s.repo.ListByAnimal(ctx, strings.TrimSpace(animalID))
}

type UpdateInput struct {
	// Ponteiros para PATCH real: nil = não tocar.
	Date         *time.Time
	Veterinarian *string
	Symptoms     *string
	Diagnosis    *string
	Treatment    *string
	Medications  *string
	Notes        *string

	// NextReturnSet distingue "não enviado" de "limpar o retorno".
	NextReturnSet bool
	NextReturn    *time.Time
}

func (s *Service) Update(ctx context.Context, actor authz.Actor, id string, in UpdateInput) (Visit, error) {
	if !actor.Can(authz.CapEdit) {
		return Visit{}, ErrForbidden
	}

	v, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Visit{}, err
	}

	if in.Date != nil {
		if in.Date.IsZero() {
			return Visit{}, ErrInvalidInput
		}
		v.Date = *in.Date
	}
	if in.Veterinarian != nil {
		if strings.TrimSpace(*in.Veterinarian) == "" {
			return Visit{}, ErrInvalidInput
		}
		v.Veterinarian = strings.TrimSpace(*in.Veterinarian)
	}
	if in.Symptoms != nil {
		if strings.TrimSpace(*in.Symptoms) == "" {
			return Visit{}, ErrInvalidInput
		}
		v.Symptoms = strings.TrimSpace(*in.Symptoms)
	}
	if in.Diagnosis != nil {
		if strings.TrimSpace(*in.Diagnosis) == "" {
			return Visit{}, ErrInvalidInput
		}
		v.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil {
		if strings.TrimSpace(*in.Treatment) == "" {
			return Visit{}, ErrInvalidInput
		}
		v.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.Medications != nil {
		v.Medications = strings.TrimSpace(*in.Medications)
	}
	if in.Notes != nil {
		v.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.NextReturnSet {
		v.NextReturn = in.NextReturn
	}

	v.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, v); err != nil {
		return Visit{}, err
	}
	if s.cache != nil {
		s.cache.VisitSaved(v)
	}
	return v, nil
}

// Delete apaga exatamente um atendimento; sem cascade.
func (s *Service) Delete(ctx context.Context, actor authz.Actor, id string) error {
	if !actor.Can(authz.CapDelete) {
		return ErrForbidden
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.VisitDeleted(id)
	}
	return nil
}
