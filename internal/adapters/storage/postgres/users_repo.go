package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-records/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usuarios (
			id, email, nome, senha_hash, ativo,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.Active,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) getBy(ctx context.Context, where string, arg any) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, nome, senha_hash, ativo, created_at, updated_at
		FROM usuarios
	`+where, arg)

	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, nome, senha_hash, ativo, created_at, updated_at
		FROM usuarios
		ORDER BY nome ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.Name,
			&u.PasswordHash,
			&u.Active,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usuarios
		SET
			email = $2,
			nome = $3,
			senha_hash = $4,
			ativo = $5,
			updated_at = $6
		WHERE id = $1
	`,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.Active,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}
