package visits

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/authz"
)

type testRepo struct {
	byID map[string]Visit
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Visit{}}
}

func (r *testRepo) Create(_ context.Context, v Visit) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Visit, error) {
	v, ok := r.byID[id]
	if !ok {
		return Visit{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) List(_ context.Context) ([]Visit, error) {
	out := make([]Visit, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *testRepo) ListByAnimal(_ context.Context, animalID string) ([]Visit, error) {
	var out []Visit
	for _, v := range r.byID {
		if v.AnimalID == animalID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *testRepo) Update(_ context.Context, v Visit) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteByAnimal(_ context.Context, animalID string) error {
	for id, v := range r.byID {
		if v.AnimalID == animalID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeAnimals struct {
	known map[string]bool
}

func (f *fakeAnimals) Exists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

var (
	adminActor   = authz.Actor{UserID: "u-admin", Role: authz.RoleAdmin}
	limitedActor = authz.Actor{UserID: "u-front", Role: authz.RoleLimited}
)

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo, &fakeAnimals{known: map[string]bool{"a1": true}}, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func validInput() RegisterInput {
	return RegisterInput{
		AnimalID:     "a1",
		Date:         time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
		Veterinarian: "Dra. Helena",
		Symptoms:     "apatia",
		Diagnosis:    "virose",
		Treatment:    "repouso e hidratação",
	}
}

func TestRegister_RequiredFields(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	mutations := []func(*RegisterInput){
		func(in *RegisterInput) { in.AnimalID = "  " },
		func(in *RegisterInput) { in.Date = time.Time{} },
		func(in *RegisterInput) { in.Veterinarian = "" },
		func(in *RegisterInput) { in.Symptoms = "" },
		func(in *RegisterInput) { in.Diagnosis = "" },
		func(in *RegisterInput) { in.Treatment = "" },
	}
	for i, mutate := range mutations {
		in := validInput()
		mutate(&in)
		if _, err := svc.Register(context.Background(), adminActor, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("caso %d: esperava ErrInvalidInput, veio %v", i, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("nada deveria ter sido gravado, há %d registros", len(repo.byID))
	}
}

func TestRegister_NormalizesOptionalFields(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Medications = "   "
	in.Notes = "  retornar em 15 dias  "

	v, err := svc.Register(context.Background(), adminActor, in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if v.Medications != "" {
		t.Errorf("medicamentos em branco deveria virar string vazia, veio %q", v.Medications)
	}
	if v.Notes != "retornar em 15 dias" {
		t.Errorf("observações não normalizadas: %q", v.Notes)
	}
	if v.NextReturn != nil {
		t.Errorf("sem retorno marcado, NextReturn deveria ser nil")
	}
	if v.ID == "" {
		t.Error("id não gerado")
	}
}

func TestRegister_UnknownAnimal(t *testing.T) {
	svc := newTestService(newTestRepo())

	in := validInput()
	in.AnimalID = "ghost"
	if _, err := svc.Register(context.Background(), adminActor, in); !errors.Is(err, ErrAnimalNotFound) {
		t.Fatalf("esperava ErrAnimalNotFound, veio %v", err)
	}
}

func TestLimitedRole_BarredEverywhere(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	v, err := svc.Register(context.Background(), adminActor, validInput())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.Register(context.Background(), limitedActor, validInput()); !errors.Is(err, ErrForbidden) {
		t.Errorf("Register limitado: esperava ErrForbidden, veio %v", err)
	}
	if _, err := svc.ListByAnimal(context.Background(), limitedActor, "a1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("ListByAnimal limitado: esperava ErrForbidden, veio %v", err)
	}
	if _, err := svc.Update(context.Background(), limitedActor, v.ID, UpdateInput{}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Update limitado: esperava ErrForbidden, veio %v", err)
	}
	if err := svc.Delete(context.Background(), limitedActor, v.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete limitado: esperava ErrForbidden, veio %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("o registro original deveria estar intacto")
	}
}

func TestUpdate_NextReturnClearVsAbsent(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	next := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in := validInput()
	in.NextReturn = &next
	v, err := svc.Register(context.Background(), adminActor, in)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Campo ausente: retorno preservado.
	notes := "sem alterações"
	updated, err := svc.Update(context.Background(), adminActor, v.ID, UpdateInput{Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NextReturn == nil || !updated.NextReturn.Equal(next) {
		t.Fatalf("retorno deveria ter sido preservado, veio %v", updated.NextReturn)
	}

	// Campo enviado como null: retorno limpo.
	updated, err = svc.Update(context.Background(), adminActor, v.ID, UpdateInput{NextReturnSet: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NextReturn != nil {
		t.Fatalf("retorno deveria ter sido limpo, veio %v", updated.NextReturn)
	}
}

func TestUpdate_RejectsBlankRequiredField(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	v, err := svc.Register(context.Background(), adminActor, validInput())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	blank := "   "
	if _, err := svc.Update(context.Background(), adminActor, v.ID, UpdateInput{Diagnosis: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("esperava ErrInvalidInput, veio %v", err)
	}
	if repo.byID[v.ID].Diagnosis != "virose" {
		t.Fatal("diagnóstico não deveria ter sido alterado")
	}
}

func TestListByAnimal_DateDescending(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	for _, day := range []int{3, 9, 1} {
		in := validInput()
		in.Date = time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
		if _, err := svc.Register(context.Background(), adminActor, in); err != nil {
			t.Fatalf("seed dia %d: %v", day, err)
		}
	}

	items, err := svc.ListByAnimal(context.Background(), adminActor, "a1")
	if err != nil {
		t.Fatalf("ListByAnimal: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("esperava 3 atendimentos, veio %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Fatalf("fora de ordem na posição %d", i)
		}
	}
}
