package users

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/authz"
)

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if u.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

var admin = authz.Actor{UserID: "admin-1", Role: authz.RoleAdmin}

func TestService_CreateAndAuthenticate(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Create(context.Background(), admin, CreateInput{
		Email:    "Maria@Clinica.com",
		Name:     "Maria",
		Password: "segredo1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.Email != "maria@clinica.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash == "segredo1" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	got, err := svc.Authenticate(context.Background(), "maria@clinica.com", "segredo1")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("expected user %s, got %s", u.ID, got.ID)
	}
}

func TestService_Authenticate_NoMatchIsUniform(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), admin, CreateInput{
		Email:    "ana@clinica.com",
		Name:     "Ana",
		Password: "segredo1",
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// email inexistente e senha errada devolvem o mesmo erro
	if _, err := svc.Authenticate(context.Background(), "ninguem@clinica.com", "segredo1"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for unknown email, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ana@clinica.com", "errada"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for wrong password, got %v", err)
	}
}

func TestService_Authenticate_InactiveRejected(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Create(context.Background(), admin, CreateInput{
		Email:    "ana@clinica.com",
		Name:     "Ana",
		Password: "segredo1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Deactivate(context.Background(), admin, u.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "ana@clinica.com", "segredo1"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for inactive account, got %v", err)
	}
}

func TestService_Create_RejectsNonAdmin(t *testing.T) {
	svc := NewService(newTestRepo())

	limited := authz.Actor{UserID: "u-1", Role: authz.RoleLimited}
	if _, err := svc.Create(context.Background(), limited, CreateInput{
		Email:    "novo@clinica.com",
		Name:     "Novo",
		Password: "segredo1",
	}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
