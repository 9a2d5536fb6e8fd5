package authz

// Role é o papel resolvido da sessão.
type Role string

const (
	RoleAdmin Role = "admin"

	// RoleLimited é a conta de atendente (recepção). O nome "teste" vem
	// do sistema legado e está preservado por compatibilidade de dados.
	RoleLimited Role = "teste"
)

type Capability string

const (
	CapViewRoster   Capability = "roster:view"
	CapCreateTutor  Capability = "tutors:create"
	CapCreateAnimal Capability = "animals:create"
	CapCreateVisit  Capability = "visits:create"
	CapViewVisits   Capability = "visits:view"
	CapEdit         Capability = "records:edit"
	CapDelete       Capability = "records:delete"
	CapExport       Capability = "records:export"
)

var allCapabilities = []Capability{
	CapViewRoster,
	CapCreateTutor,
	CapCreateAnimal,
	CapCreateVisit,
	CapViewVisits,
	CapEdit,
	CapDelete,
	CapExport,
}

var limitedCapabilities = []Capability{
	CapViewRoster,
	CapCreateTutor,
	CapCreateAnimal,
}

// Can é função pura: papel -> capacidade. O atendente só enxerga o roster e
// cadastra tutores/animais; nunca recebe dados de atendimentos.
func Can(r Role, c Capability) bool {
	for _, have := range Capabilities(r) {
		if have == c {
			return true
		}
	}
	return false
}

// Capabilities devolve o conjunto de capacidades do papel.
func Capabilities(r Role) []Capability {
	switch r {
	case RoleAdmin:
		return allCapabilities
	case RoleLimited:
		return limitedCapabilities
	default:
		return nil
	}
}

// Actor é o contexto de sessão propagado explicitamente para cada operação
// que exige autorização (nada de estado global de "usuário atual").
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) Can(c Capability) bool {
	return Can(a.Role, c)
}
