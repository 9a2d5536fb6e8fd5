package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vet-clinic-records/internal/domain/tutors"
)

type TutorsRepo struct {
	db *sql.DB
}

func NewTutorsRepo(db *sql.DB) *TutorsRepo {
	return &TutorsRepo{db: db}
}

func (r *TutorsRepo) Create(ctx context.Context, t tutors.Tutor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tutores (
			id, nome, cpf, telefone, email, endereco,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		t.ID,
		t.Name,
		nullIfEmpty(t.CPF),
		t.Phone,
		nullIfEmpty(t.Email),
		nullIfEmpty(t.Address),
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TutorsRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return tutors.Tutor{}, tutors.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, cpf, telefone, email, endereco, created_at, updated_at
		FROM tutores
		WHERE id = $1
	`, id)

	t, err := scanTutor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tutors.Tutor{}, tutors.ErrNotFound
		}
		return tutors.Tutor{}, err
	}
	return t, nil
}

func (r *TutorsRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, cpf, telefone, email, endereco, created_at, updated_at
		FROM tutores
		ORDER BY nome ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tutors.Tutor, 0)
	for rows.Next() {
		t, err := scanTutor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TutorsRepo) Update(ctx context.Context, t tutors.Tutor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tutores
		SET
			nome = $2,
			cpf = $3,
			telefone = $4,
			email = $5,
			endereco = $6,
			updated_at = $7
		WHERE id = $1
	`,
		t.ID,
		t.Name,
		nullIfEmpty(t.CPF),
		t.Phone,
		nullIfEmpty(t.Email),
		nullIfEmpty(t.Address),
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}

func (r *TutorsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tutores WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Campos opcionais ficam NULL no banco e viram string vazia no domínio.
func scanTutor(row rowScanner) (tutors.Tutor, error) {
	var t tutors.Tutor
	var cpf, email, address sql.NullString
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&cpf,
		&t.Phone,
		&email,
		&address,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return tutors.Tutor{}, err
	}
	t.CPF = cpf.String
	t.Email = email.String
	t.Address = address.String
	return t, nil
}
