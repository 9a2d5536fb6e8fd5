package sessions

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Record é a identidade limitada (atendente) persistida por token.
// Fica do lado do servidor; o cliente só carrega o token opaco.
type Record struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Store guarda sessões limitadas por token opaco.
type Store interface {
	Save(ctx context.Context, token string, rec Record) error

	// Load devolve ErrNotFound quando o token não existe ou expirou.
	Load(ctx context.Context, token string) (Record, error)

	Delete(ctx context.Context, token string) error
}
