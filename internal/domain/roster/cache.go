// Package roster mantém a projeção em memória usada pela listagem, pela
// busca e pela exportação. As mutações dos domínios alimentam o cache; os
// repositórios continuam sendo a fonte de verdade.
package roster

import (
	"sort"
	"sync"

	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/tutors"
	"vet-clinic-records/internal/domain/visits"
)

// Entry é um animal já resolvido com seu tutor para exibição.
type Entry struct {
	Animal animals.Animal

	// Tutor é nil quando a referência está pendurada; a exibição usa
	// "Tutor desconhecido" nesse caso.
	Tutor *tutors.Tutor
}

func (e Entry) TutorName() string {
	if e.Tutor == nil {
		return "Tutor desconhecido"
	}
	return e.Tutor.Name
}

type Cache struct {
	mu      sync.RWMutex
	tutors  map[string]tutors.Tutor
	animals map[string]animals.Animal
	visits  map[string]visits.Visit
}

func NewCache() *Cache {
	return &Cache{
		tutors:  map[string]tutors.Tutor{},
		animals: map[string]animals.Animal{},
		visits:  map[string]visits.Visit{},
	}
}

// Load substitui a projeção inteira. Chamado uma vez na subida, com o
// conteúdo dos repositórios.
func (c *Cache) Load(ts []tutors.Tutor, as []animals.Animal, vs []visits.Visit) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tutors = make(map[string]tutors.Tutor, len(ts))
	for _, t := range ts {
		c.tutors[t.ID] = t
	}
	c.animals = make(map[string]animals.Animal, len(as))
	for _, a := range as {
		c.animals[a.ID] = a
	}
	c.visits = make(map[string]visits.Visit, len(vs))
	for _, v := range vs {
		c.visits[v.ID] = v
	}
}

func (c *Cache) TutorSaved(t tutors.Tutor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tutors[t.ID] = t
}

func (c *Cache) TutorDeleted(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tutors, id)
}

func (c *Cache) AnimalSaved(a animals.Animal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animals[a.ID] = a
}

// AnimalDeleted remove o animal e todos os seus atendimentos, espelhando o
// cascade feito nos repositórios.
func (c *Cache) AnimalDeleted(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.animals, id)
	for vid, v := range c.visits {
		if v.AnimalID == id {
			delete(c.visits, vid)
		}
	}
}

func (c *Cache) VisitSaved(v visits.Visit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visits[v.ID] = v
}

func (c *Cache) VisitDeleted(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.visits, id)
}

func (c *Cache) TutorByID(id string) (tutors.Tutor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tutors[id]
	return t, ok
}

func (c *Cache) EntryByAnimal(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.animals[id]
	if !ok {
		return Entry{}, false
	}
	return c.entryLocked(a), true
}

// Entries devolve todos os animais resolvidos, mais recentes primeiro
// (data de adesão desc, desempate por nome).
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0, len(c.animals))
	for _, a := range c.animals {
		out = append(out, c.entryLocked(a))
	}
	sortEntries(out)
	return out
}

// VisitsByAnimal devolve o histórico do animal em data decrescente.
func (c *Cache) VisitsByAnimal(animalID string) []visits.Visit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []visits.Visit
	for _, v := range c.visits {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (c *Cache) entryLocked(a animals.Animal) Entry {
	e := Entry{Animal: a}
	if t, ok := c.tutors[a.TutorID]; ok {
		tt := t
		e.Tutor = &tt
	}
	return e
}

func sortEntries(out []Entry) {
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].Animal, out[j].Animal
		if !ai.JoinDate.Equal(aj.JoinDate) {
			return ai.JoinDate.After(aj.JoinDate)
		}
		return ai.Name < aj.Name
	})
}
