package roster

import (
	"strings"

	"vet-clinic-records/internal/domain/tutors"
)

// Search filtra a listagem por substring, sem diferenciar maiúsculas, no
// nome do animal ou no nome do tutor. Quando a consulta contém dígitos,
// eles também são comparados com os dígitos do CPF do tutor, então
// "529.982" encontra o CPF digitado como "52998224725". Consulta vazia
// devolve a listagem completa; a ordenação é a mesma de Entries.
func (c *Cache) Search(query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Entries()
	}

	lower := strings.ToLower(query)
	digits := tutors.OnlyDigits(query)

	all := c.Entries()
	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if matches(e, lower, digits) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, lower, digits string) bool {
	if strings.Contains(strings.ToLower(e.Animal.Name), lower) {
		return true
	}
	if e.Tutor == nil {
		return false
	}
	if strings.Contains(strings.ToLower(e.Tutor.Name), lower) {
		return true
	}
	if digits != "" && strings.Contains(tutors.OnlyDigits(e.Tutor.CPF), digits) {
		return true
	}
	return false
}
