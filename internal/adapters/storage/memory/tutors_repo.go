// Package memory guarda tudo em mapas protegidos por mutex. É o backend
// padrão quando DB_DSN não está configurado (dev e testes).
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/tutors"
)

type tutorsRepo struct {
	mu   sync.RWMutex
	byID map[string]tutors.Tutor
}

func NewTutorsRepo() tutors.Repository {
	return &tutorsRepo{
		byID: make(map[string]tutors.Tutor),
	}
}

func (r *tutorsRepo) Create(ctx context.Context, t tutors.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		return errors.New("tutor id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("tutor already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *tutorsRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return tutors.Tutor{}, tutors.ErrNotFound
	}
	return t, nil
}

func (r *tutorsRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tutors.Tutor, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *tutorsRepo) Update(ctx context.Context, t tutors.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return tutors.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *tutorsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return tutors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
