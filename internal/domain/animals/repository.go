package animals

import "context"

type Repository interface {
	// Create insere e devolve o registro com data_adesao atribuída pelo store.
	Create(ctx context.Context, a Animal) (Animal, error)

	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error) // ordenado por nome asc
	ListByTutor(ctx context.Context, tutorID string) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error

	// HasAnimals responde se o tutor tem ao menos um animal. Alimenta o
	// bloqueio de exclusão de tutor.
	HasAnimals(ctx context.Context, tutorID string) (bool, error)
}

// TutorLookup resolve se o tutor referenciado existe. Implementado pelo
// serviço de tutores; interface local para evitar ciclo de imports.
type TutorLookup interface {
	Exists(ctx context.Context, tutorID string) (bool, error)
}

// VisitPurger apaga todos os atendimentos de um animal. Implementado pelos
// repositórios de atendimentos; é o primeiro passo obrigatório do cascade.
type VisitPurger interface {
	DeleteByAnimal(ctx context.Context, animalID string) error
}

// Projection é o cache em memória atualizado a cada mutação bem-sucedida.
// AnimalDeleted também purga os atendimentos do animal na projeção.
type Projection interface {
	AnimalSaved(a Animal)
	AnimalDeleted(id string)
}
