package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO atendimentos (
			id, animal_id, data, veterinario,
			sintomas, diagnostico, tratamento,
			medicamentos, observacoes, proximo_retorno,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		v.ID,
		v.AnimalID,
		v.Date,
		v.Veterinarian,
		v.Symptoms,
		v.Diagnosis,
		v.Treatment,
		nullIfEmpty(v.Medications),
		nullIfEmpty(v.Notes),
		toNullDate(v.NextReturn),
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VisitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return visits.Visit{}, visits.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, animal_id, data, veterinario,
			sintomas, diagnostico, tratamento,
			medicamentos, observacoes, proximo_retorno,
			created_at, updated_at
		FROM atendimentos
		WHERE id = $1
	`, id)

	v, err := scanVisit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT
			id, animal_id, data, veterinario,
			sintomas, diagnostico, tratamento,
			medicamentos, observacoes, proximo_retorno,
			created_at, updated_at
		FROM atendimentos
		ORDER BY data DESC
	`)
}

func (r *VisitsRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	return r.list(ctx, `
		SELECT
			id, animal_id, data, veterinario,
			sintomas, diagnostico, tratamento,
			medicamentos, observacoes, proximo_retorno,
			created_at, updated_at
		FROM atendimentos
		WHERE animal_id = $1
		ORDER BY data DESC
	`, animalID)
}

func (r *VisitsRepo) list(ctx context.Context, query string, args ...any) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitsRepo) Update(ctx context.Context, v visits.Visit) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE atendimentos
		SET
			data = $2,
			veterinario = $3,
			sintomas = $4,
			diagnostico = $5,
			tratamento = $6,
			medicamentos = $7,
			observacoes = $8,
			proximo_retorno = $9,
			updated_at = $10
		WHERE id = $1
	`,
		v.ID,
		v.Date,
		v.Veterinarian,
		v.Symptoms,
		v.Diagnosis,
		v.Treatment,
		nullIfEmpty(v.Medications),
		nullIfEmpty(v.Notes),
		toNullDate(v.NextReturn),
		v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM atendimentos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

// DeleteByAnimal apaga o histórico inteiro do animal. Zero linhas não é
// erro: o cascade precisa poder ser repetido depois de uma falha parcial.
func (r *VisitsRepo) DeleteByAnimal(ctx context.Context, animalID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM atendimentos WHERE animal_id = $1`, animalID)
	return err
}

func scanVisit(row rowScanner) (visits.Visit, error) {
	var v visits.Visit
	var meds, notes sql.NullString
	var next sql.NullTime
	if err := row.Scan(
		&v.ID,
		&v.AnimalID,
		&v.Date,
		&v.Veterinarian,
		&v.Symptoms,
		&v.Diagnosis,
		&v.Treatment,
		&meds,
		&notes,
		&next,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return visits.Visit{}, err
	}
	v.Medications = meds.String
	v.Notes = notes.String
	if next.Valid {
		t := next.Time
		v.NextReturn = &t
	}
	return v, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
