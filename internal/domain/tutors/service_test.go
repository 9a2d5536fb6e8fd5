package tutors

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/authz"
)

type testRepo struct {
	byID    map[string]Tutor
	created int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Tutor{}}
}

func (r *testRepo) Create(ctx context.Context, t Tutor) error {
	r.created++
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Tutor, error) {
	t, ok := r.byID[id]
	if !ok {
		return Tutor{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) List(ctx context.Context) ([]Tutor, error) {
	out := make([]Tutor, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, t Tutor) error {
	if _, ok := r.byID[t.ID]; !ok {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeAnimals struct {
	has bool
}

func (f *fakeAnimals) HasAnimals(ctx context.Context, tutorID string) (bool, error) {
	return f.has, nil
}

var (
	admin   = authz.Actor{UserID: "admin-1", Role: authz.RoleAdmin}
	limited = authz.Actor{UserID: "aten-1", Role: authz.RoleLimited}
)

func TestValidCPF(t *testing.T) {
	cases := []struct {
		cpf  string
		want bool
	}{
		{"111.111.111-11", false}, // dígito repetido
		{"529.982.247-25", true},  // checksum válido
		{"52998224725", true},     // sem máscara
		{"529.982.247-24", false}, // dígito verificador errado
		{"123", false},
	}
	for _, tc := range cases {
		if got := ValidCPF(tc.cpf); got != tc.want {
			t.Fatalf("ValidCPF(%q) = %v, want %v", tc.cpf, got, tc.want)
		}
	}
}

func TestRegister_Valid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &fakeAnimals{}, nil)

	tu, err := svc.Register(context.Background(), limited, RegisterInput{
		Name:  "Ana",
		Phone: "11999998888",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if tu.ID == "" {
		t.Fatalf("expected assigned identifier")
	}
	if repo.created != 1 {
		t.Fatalf("expected one insert, got %d", repo.created)
	}
}

func TestRegister_EmptyCPFAccepted(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeAnimals{}, nil)

	if _, err := svc.Register(context.Background(), admin, RegisterInput{
		Name:  "Ana",
		Phone: "(11) 99999-8888",
		CPF:   "",
	}); err != nil {
		t.Fatalf("empty CPF must be accepted: %v", err)
	}
}

func TestRegister_ValidationBeforeStore(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &fakeAnimals{}, nil)

	cases := []RegisterInput{
		{Name: "A", Phone: "11999998888"},                          // nome curto
		{Name: "Ana", Phone: "119"},                                // telefone curto
		{Name: "Ana", Phone: "11999998888", CPF: "111.111.111-11"}, // cpf repetido
	}
	for i, in := range cases {
		_, err := svc.Register(context.Background(), admin, in)
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
	}
	if repo.created != 0 {
		t.Fatalf("store must not be contacted on validation failure, got %d inserts", repo.created)
	}
}

func TestUpdate_AdminOnly(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &fakeAnimals{}, nil)

	tu, err := svc.Register(context.Background(), admin, RegisterInput{Name: "Ana", Phone: "11999998888"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	novo := "Ana Paula"
	if _, err := svc.Update(context.Background(), limited, tu.ID, UpdateInput{Name: &novo}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for limited role, got %v", err)
	}

	got, err := svc.Update(context.Background(), admin, tu.ID, UpdateInput{Name: &novo})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.Name != "Ana Paula" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.Phone != "11999998888" {
		t.Fatalf("partial update must keep phone, got %q", got.Phone)
	}
}

func TestDelete_BlockedWhileTutorHasAnimals(t *testing.T) {
	repo := newTestRepo()
	animals := &fakeAnimals{has: true}
	svc := NewService(repo, animals, nil)

	tu, err := svc.Register(context.Background(), admin, RegisterInput{Name: "Ana", Phone: "11999998888"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), admin, tu.ID); !errors.Is(err, ErrTutorHasAnimals) {
		t.Fatalf("expected ErrTutorHasAnimals, got %v", err)
	}

	animals.has = false
	if err := svc.Delete(context.Background(), admin, tu.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), tu.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected tutor gone, got %v", err)
	}
}

func TestDelete_RejectsLimitedRole(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeAnimals{}, nil)
	if err := svc.Delete(context.Background(), limited, "qualquer"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
