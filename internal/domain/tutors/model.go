package tutors

import "time"

// Tutor é o responsável pelo animal.
type Tutor struct {
	ID   string
	Name string

	// CPF é opcional; quando presente, já passou pela validação de dígito
	// verificador. Guardado como digitado (com ou sem máscara).
	CPF string

	Phone   string
	Email   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
