package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"vet-clinic-records/internal/domain/animals"
)

type animalsRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
	now  func() time.Time
}

func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{
		byID: make(map[string]animals.Animal),
		now:  time.Now,
	}
}

// Create atribui a data de adesão, papel que no Postgres é do DEFAULT da
// coluna data_adesao.
func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return animals.Animal{}, errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return animals.Animal{}, errors.New("animal already exists")
	}

	a.JoinDate = r.now().UTC().Truncate(24 * time.Hour)
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *animalsRepo) ListByTutor(ctx context.Context, tutorID string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.TutorID == tutorID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[a.ID]
	if !exists {
		return animals.ErrNotFound
	}
	// data_adesao é imutável depois do insert
	a.JoinDate = cur.JoinDate
	r.byID[a.ID] = a
	return nil
}

func (r *animalsRepo) HasAnimals(ctx context.Context, tutorID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.TutorID == tutorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *animalsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
