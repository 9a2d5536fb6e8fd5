package users

import "time"

// User é a conta limitada de atendente (tabela usuarios).
// Distinta da identidade de administrador, que vive no provedor de auth.
type User struct {
	ID    string
	Email string
	Name  string

	// PasswordHash é hash bcrypt; nunca guardamos a senha em texto puro.
	PasswordHash string

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
