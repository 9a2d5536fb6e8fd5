// Package redis persiste sessões limitadas no Redis com TTL. Selecionado
// na subida quando REDIS_ADDR está configurado.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vet-clinic-records/internal/ports/sessions"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "sessao:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore recebe o TTL das sessões; zero desliga a expiração.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func (s *Store) Save(ctx context.Context, token string, rec sessions.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+token, data, s.ttl).Err()
}

func (s *Store) Load(ctx context.Context, token string) (sessions.Record, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sessions.Record{}, sessions.ErrNotFound
		}
		return sessions.Record{}, err
	}

	var rec sessions.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return sessions.Record{}, err
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
