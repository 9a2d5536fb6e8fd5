package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vet-clinic-records/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

// Create deixa a data_adesao por conta do DEFAULT CURRENT_DATE da coluna
// e devolve o registro com o valor atribuído.
func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO animais (
			id, tutor_id,
			nome, especie, raca, sexo, cor, peso,
			data_nascimento,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING data_adesao
	`,
		a.ID,
		a.TutorID,
		a.Name,
		string(a.Species),
		nullIfEmpty(a.Breed),
		string(a.Sex),
		nullIfEmpty(a.Color),
		a.Weight,
		a.BirthDate,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err := row.Scan(&a.JoinDate); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, tutor_id,
			nome, especie, raca, sexo, cor, peso,
			data_nascimento, data_adesao,
			created_at, updated_at
		FROM animais
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.list(ctx, `
		SELECT
			id, tutor_id,
			nome, especie, raca, sexo, cor, peso,
			data_nascimento, data_adesao,
			created_at, updated_at
		FROM animais
		ORDER BY nome ASC
	`)
}

func (r *AnimalsRepo) ListByTutor(ctx context.Context, tutorID string) ([]animals.Animal, error) {
	return r.list(ctx, `
		SELECT
			id, tutor_id,
			nome, especie, raca, sexo, cor, peso,
			data_nascimento, data_adesao,
			created_at, updated_at
		FROM animais
		WHERE tutor_id = $1
		ORDER BY nome ASC
	`, tutorID)
}

func (r *AnimalsRepo) list(ctx context.Context, query string, args ...any) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update não toca em data_adesao; ela é imutável depois do insert.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animais
		SET
			tutor_id = $2,
			nome = $3,
			especie = $4,
			raca = $5,
			sexo = $6,
			cor = $7,
			peso = $8,
			data_nascimento = $9,
			updated_at = $10
		WHERE id = $1
	`,
		a.ID,
		a.TutorID,
		a.Name,
		string(a.Species),
		nullIfEmpty(a.Breed),
		string(a.Sex),
		nullIfEmpty(a.Color),
		a.Weight,
		a.BirthDate,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) HasAnimals(ctx context.Context, tutorID string) (bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM animais WHERE tutor_id = $1)`, tutorID)
	var has bool
	if err := row.Scan(&has); err != nil {
		return false, err
	}
	return has, nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animais WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var species, sex string
	var breed, color sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.TutorID,
		&a.Name,
		&species,
		&breed,
		&sex,
		&color,
		&a.Weight,
		&a.BirthDate,
		&a.JoinDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}
	a.Species = animals.Species(species)
	a.Sex = animals.Sex(sex)
	a.Breed = breed.String
	a.Color = color.String
	return a, nil
}
