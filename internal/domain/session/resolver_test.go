package session

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/sessions"
)

func TestResolve_EmptyTokenIsAnonymous(t *testing.T) {
	r := NewResolver(newFakeSessionStore(), newFakeProvider())

	id, err := r.Resolve(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindAnonymous {
		t.Fatalf("expected anonymous, got %s", id.Kind)
	}
}

func TestResolve_LimitedWinsOverAdmin(t *testing.T) {
	store := newFakeSessionStore()
	provider := newFakeProvider()

	// o mesmo token é reconhecido pelas duas fontes
	token := "tok-1"
	store.byToken[token] = sessions.Record{UserID: "u-1", Name: "Ana", Email: "ana@clinica.com"}
	provider.tokens[token] = auth.Identity{UserID: "admin-1", Email: "ana@clinica.com"}

	r := NewResolver(store, provider)
	id, err := r.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindLimited {
		t.Fatalf("limited identity must take priority, got %s", id.Kind)
	}
	if id.UserID != "u-1" {
		t.Fatalf("expected limited user id, got %s", id.UserID)
	}
}

func TestResolve_AdminWhenOnlyProviderKnowsToken(t *testing.T) {
	provider := newFakeProvider()
	provider.tokens["tok-adm"] = auth.Identity{UserID: "admin-1", Email: "chefe@clinica.com", Name: "Chefe"}

	r := NewResolver(newFakeSessionStore(), provider)
	id, err := r.Resolve(context.Background(), "tok-adm")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindAdmin {
		t.Fatalf("expected admin, got %s", id.Kind)
	}
}

func TestResolve_UnknownTokenIsAnonymous(t *testing.T) {
	r := NewResolver(newFakeSessionStore(), newFakeProvider())

	id, err := r.Resolve(context.Background(), "tok-x")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindAnonymous {
		t.Fatalf("expected anonymous, got %s", id.Kind)
	}
}

func TestResolve_NilProvider(t *testing.T) {
	store := newFakeSessionStore()
	store.byToken["tok-1"] = sessions.Record{UserID: "u-1"}

	r := NewResolver(store, nil)
	id, err := r.Resolve(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindLimited {
		t.Fatalf("expected limited, got %s", id.Kind)
	}
}

func TestResolve_StoreErrorSurfaces(t *testing.T) {
	store := newFakeSessionStore()
	store.loadErr = errors.New("redis down")

	r := NewResolver(store, newFakeProvider())
	if _, err := r.Resolve(context.Background(), "tok-1"); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
