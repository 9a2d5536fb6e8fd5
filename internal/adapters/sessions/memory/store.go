// Package memory guarda sessões limitadas num mapa. Sem TTL; serve para
// dev e testes, onde o processo é descartável.
package memory

import (
	"context"
	"sync"

	"vet-clinic-records/internal/ports/sessions"
)

type Store struct {
	mu      sync.RWMutex
	byToken map[string]sessions.Record
}

func NewStore() *Store {
	return &Store{
		byToken: make(map[string]sessions.Record),
	}
}

func (s *Store) Save(ctx context.Context, token string, rec sessions.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = rec
	return nil
}

func (s *Store) Load(ctx context.Context, token string) (sessions.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byToken[token]
	if !ok {
		return sessions.Record{}, sessions.ErrNotFound
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
	return nil
}
