package tutors

import "context"

type Repository interface {
	Create(ctx context.Context, t Tutor) error
	GetByID(ctx context.Context, id string) (Tutor, error)
	List(ctx context.Context) ([]Tutor, error) // ordenado por nome asc
	Update(ctx context.Context, t Tutor) error
	Delete(ctx context.Context, id string) error
}

// AnimalLookup responde se o tutor ainda tem animais. Implementado pelos
// repositórios de animais; interface local para evitar ciclo de imports.
type AnimalLookup interface {
	HasAnimals(ctx context.Context, tutorID string) (bool, error)
}

// Projection é o cache em memória atualizado de forma síncrona a cada
// mutação bem-sucedida (projeção write-through, não fonte de verdade).
type Projection interface {
	TutorSaved(t Tutor)
	TutorDeleted(id string)
}
