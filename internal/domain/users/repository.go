package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error) // ordenado por nome asc
	Update(ctx context.Context, u User) error
}
