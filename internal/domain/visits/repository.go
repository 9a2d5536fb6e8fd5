package visits

import "context"

type Repository interface {
	Create(ctx context.Context, v Visit) error
	GetByID(ctx context.Context, id string) (Visit, error)
	List(ctx context.Context) ([]Visit, error)                          // ordenado por data desc
	ListByAnimal(ctx context.Context, animalID string) ([]Visit, error) // ordenado por data desc
	Update(ctx context.Context, v Visit) error
	Delete(ctx context.Context, id string) error

	// DeleteByAnimal apaga todos os atendimentos do animal. Primeiro passo
	// do cascade de exclusão de animal; sem linhas é no-op, não erro.
	DeleteByAnimal(ctx context.Context, animalID string) error
}

// AnimalLookup resolve se o animal referenciado existe. Implementado pelo
// serviço de animais; interface local para evitar ciclo de imports.
type AnimalLookup interface {
	Exists(ctx context.Context, animalID string) (bool, error)
}

// Projection é o cache em memória atualizado a cada mutação bem-sucedida.
type Projection interface {
	VisitSaved(v Visit)
	VisitDeleted(id string)
}
