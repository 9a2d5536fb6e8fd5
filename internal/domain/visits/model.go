package visits

import "time"

// Visit é um atendimento veterinário.
// Campos de texto opcionais são sempre string vazia quando ausentes
// (representação canônica; NULL legado é normalizado na leitura).
type Visit struct {
	ID       string
	AnimalID string

	Date         time.Time
	Veterinarian string
	Symptoms     string
	Diagnosis    string
	Treatment    string

	Medications string
	Notes       string
	NextReturn  *time.Time // nil = sem retorno marcado

	CreatedAt time.Time
	UpdatedAt time.Time
}
