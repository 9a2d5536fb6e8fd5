package animals

import "time"

// Species define as espécies aceitas no cadastro.
// @Enum Cão, Gato, Coelho, Hamster, Pássaro, Peixe, Réptil, Outro
type Species string

const (
	SpeciesCao     Species = "Cão"
	SpeciesGato    Species = "Gato"
	SpeciesCoelho  Species = "Coelho"
	SpeciesHamster Species = "Hamster"
	SpeciesPassaro Species = "Pássaro"
	SpeciesPeixe   Species = "Peixe"
	SpeciesReptil  Species = "Réptil"
	SpeciesOutro   Species = "Outro"
)

func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesCao, SpeciesGato, SpeciesCoelho, SpeciesHamster,
		SpeciesPassaro, SpeciesPeixe, SpeciesReptil, SpeciesOutro:
		return true
	}
	return false
}

// Sex define o sexo do animal.
// @Enum Macho, Fêmea
type Sex string

const (
	SexMale   Sex = "Macho"
	SexFemale Sex = "Fêmea"
)

func ValidSex(s Sex) bool {
	return s == SexMale || s == SexFemale
}

// Animal é o pet cadastrado. A referência ao tutor é só chave estrangeira;
// referência pendurada é tolerada na exibição ("tutor desconhecido").
type Animal struct {
	ID      string
	TutorID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex
	Color   string
	Weight  float64 // kg, > 0

	BirthDate time.Time

	// JoinDate (data_adesao) é atribuída pelo store no insert.
	JoinDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
