package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/visits"
)

type visitsRepo struct {
	mu   sync.RWMutex
	byID map[string]visits.Visit
}

func NewVisitsRepo() visits.Repository {
	return &visitsRepo{
		byID: make(map[string]visits.Visit),
	}
}

func (r *visitsRepo) Create(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("visit already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *visitsRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0)
	for _, v := range r.byID {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *visitsRepo) Update(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return visits.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// DeleteByAnimal é no-op quando o animal não tem atendimentos; o cascade
// precisa poder ser repetido depois de uma falha parcial.
func (r *visitsRepo) DeleteByAnimal(ctx context.Context, animalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, v := range r.byID {
		if v.AnimalID == animalID {
			delete(r.byID, id)
		}
	}
	return nil
}

func sortByDateDesc(out []visits.Visit) {
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
}
