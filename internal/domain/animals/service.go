package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/authz"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrTutorNotFound = errors.New("tutor not found")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
)

// CascadeStep identifica qual passo da exclusão em cascata falhou.
type CascadeStep string

const (
	StepVisits CascadeStep = "atendimentos"
	StepAnimal CascadeStep = "animal"
)

// CascadeError reporta o passo que falhou na exclusão animal+atendimentos.
// Os dois passos não são atômicos entre si: se os atendimentos sumiram e o
// animal ficou, repetir a operação inteira é seguro (o primeiro passo vira
// no-op). O chamador decide se repete só o passo restante.
type CascadeError struct {
	Step CascadeStep
	Err  error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade delete: step %s: %v", e.Step, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }

type Service struct {
	repo   Repository
	visits VisitPurger
	tutors TutorLookup
	cache  Projection
	now    func() time.Time
}

func NewService(repo Repository, visits VisitPurger, tutors TutorLookup, cache Projection) *Service {
	return &Service{
		repo:   repo,
		visits: visits,
		tutors: tutors,
		cache:  cache,
		now:    time.Now,
	}
}

type RegisterInput struct {
	TutorID   string
	Name      string
	Species   Species
	Breed     string
	Sex       Sex
	Color     string
	Weight    float64
	BirthDate time.Time
}

func (s *Service) Register(ctx context.Context, actor authz.Actor, in RegisterInput) (Animal, error) {
	if !actor.Can(authz.CapCreateAnimal) {
		return Animal{}, ErrForbidden
	}

	tutorID := strings.TrimSpace(in.TutorID)
	if tutorID == "" ||
		strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Breed) == "" ||
		strings.TrimSpace(in.Color) == "" ||
		in.BirthDate.IsZero() {
		return Animal{}, ErrInvalidInput
	}
	if !ValidSpecies(in.Species) || !ValidSex(in.Sex) {
		return Animal{}, ErrInvalidInput
	}
	if in.Weight <= 0 {
		return Animal{}, ErrInvalidInput
	}

	// A UI já impede tutor inexistente, mas o serviço tolera e rejeita.
	ok, err := s.tutors.Exists(ctx, tutorID)
	if err != nil {
		return Animal{}, err
	}
	if !ok {
		return Animal{}, ErrTutorNotFound
	}

	now := s.now()
	a := Animal{
		ID:        uuid.NewString(),
		TutorID:   tutorID,
		Name:      strings.TrimSpace(in.Name),
		Species:   in.Species,
		Breed:     strings.TrimSpace(in.Breed),
		Sex:       in.Sex,
		Color:     strings.TrimSpace(in.Color),
		Weight:    in.Weight,
		BirthDate: in.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, err
	}
	if s.cache != nil {
		s.cache.AnimalSaved(created)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

// Exists expõe a resolução de animal para o módulo de atendimentos.
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

// HasAnimals responde ao bloqueio de exclusão de tutor.
func (s *Service) HasAnimals(ctx context.Context, tutorID string) (bool, error) {
	return s.repo.HasAnimals(ctx, tutorID)
}

type UpdateInput struct {
	// Ponteiros para PATCH real: nil = não tocar.
	TutorID   *string
	Name      *string
	Species   *Species
	Breed     *string
	Sex       *Sex
	Color     *string
	Weight    *float64
	BirthDate *time.Time
}

// Update aplica um update parcial. Somente admin.
func (s *Service) Update(ctx context.Context, actor authz.Actor, id string, in UpdateInput) (Animal, error) {
	if !actor.Can(authz.CapEdit) {
		return Animal{}, ErrForbidden
	}

	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Animal{}, err
	}

	if in.TutorID != nil {
		tutorID := strings.TrimSpace(*in.TutorID)
		if tutorID == "" {
			return Animal{}, ErrInvalidInput
		}
		ok, err := s.tutors.Exists(ctx, tutorID)
		if err != nil {
			return Animal{}, err
		}
		if !ok {
			return Animal{}, ErrTutorNotFound
		}
		a.TutorID = tutorID
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if !ValidSpecies(*in.Species) {
			return Animal{}, ErrInvalidInput
		}
		a.Species = *in.Species
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		if !ValidSex(*in.Sex) {
			return Animal{}, ErrInvalidInput
		}
		a.Sex = *in.Sex
	}
	if in.Color != nil {
		a.Color = strings.TrimSpace(*in.Color)
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return Animal{}, ErrInvalidInput
		}
		a.Weight = *in.Weight
	}
	if in.BirthDate != nil {
		if in.BirthDate.IsZero() {
			return Animal{}, ErrInvalidInput
		}
		a.BirthDate = *in.BirthDate
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	if s.cache != nil {
		s.cache.AnimalSaved(a)
	}
	return a, nil
}

// Delete exclui o animal em cascata: PRIMEIRO todos os atendimentos,
// DEPOIS o animal. A ordem é obrigatória para nunca deixar atendimento
// órfão apontando para animal apagado.
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

	if err := s.visits.DeleteByAnimal(ctx, id); err != nil {
		return &CascadeError{Step: StepVisits, Err: err}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &CascadeError{Step: StepAnimal, Err: err}
	}

	if s.cache != nil {
		s.cache.AnimalDeleted(id)
	}
	return nil
}
