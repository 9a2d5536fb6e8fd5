package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/router"
)

// fakeProvider cumpre o papel do GoTrue nos testes: uma conta de admin
// fixa e tokens emitidos em memória.
type fakeProvider struct {
	email    string
	password string
	tokens   map[string]auth.Identity
}

func newFakeProvider(email, password string) *fakeProvider {
	return &fakeProvider{
		email:    email,
		password: password,
		tokens:   map[string]auth.Identity{},
	}
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (auth.Session, error) {
	if email != p.email || password != p.password {
		return auth.Session{}, errors.New("unauthorized")
	}
	id := auth.Identity{UserID: "admin-1", Email: email, Name: "Dra. Admin"}
	token := "admin-token-" + email
	p.tokens[token] = id
	return auth.Session{AccessToken: token, Identity: id}, nil
}

func (p *fakeProvider) Verify(_ context.Context, token string) (auth.Identity, error) {
	id, ok := p.tokens[token]
	if !ok {
		return auth.Identity{}, errors.New("unknown token")
	}
	return id, nil
}

func (p *fakeProvider) SignOut(_ context.Context, token string) error {
	delete(p.tokens, token)
	return nil
}

func TestHTTP_EndToEnd_ClinicFlow(t *testing.T) {
	provider := newFakeProvider("vet@clinica.com", "segredo-forte")
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthProvider: provider}))
	defer ts.Close()

	// 1) Login do admin via provedor
	adminToken := login(t, ts.URL, "vet@clinica.com", "segredo-forte")

	// 2) Admin cadastra tutor
	tutorID := createResource(t, ts.URL, "/tutores", adminToken, map[string]any{
		"nome":     "Maria Souza",
		"telefone": "(11) 98888-7777",
		"cpf":      "529.982.247-25",
	})

	// 3) Admin cadastra animal do tutor
	animalID := createResource(t, ts.URL, "/animais", adminToken, map[string]any{
		"tutor_id":        tutorID,
		"nome":            "Rex",
		"especie":         "Cão",
		"raca":            "SRD",
		"sexo":            "Macho",
		"cor":             "caramelo",
		"peso":            14.5,
		"data_nascimento": "2020-06-15",
	})

	// 4) Admin registra atendimento
	createResource(t, ts.URL, "/animais/"+animalID+"/atendimentos", adminToken, map[string]any{
		"data":        "2024-02-10",
		"veterinario": "Dra. Helena",
		"sintomas":    "apatia",
		"diagnostico": "virose",
		"tratamento":  "repouso",
	})

	// 5) Listagem resolve o tutor e deriva a idade
	{
		st, body := doReq(t, ts.URL, "GET", "/animais", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing, got %d body=%s", st, body)
		}
		var entries []map[string]any
		if err := json.Unmarshal(body, &entries); err != nil {
			t.Fatalf("decode listing: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0]["tutor_nome"] != "Maria Souza" {
			t.Errorf("tutor_nome = %v", entries[0]["tutor_nome"])
		}
		if idade, _ := entries[0]["idade"].(string); idade == "" {
			t.Error("idade deveria vir derivada na listagem")
		}
	}

	// 6) Busca por dígitos do CPF encontra o animal
	{
		st, body := doReq(t, ts.URL, "GET", "/animais?busca=529982", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d", st)
		}
		var entries []map[string]any
		_ = json.Unmarshal(body, &entries)
		if len(entries) != 1 {
			t.Fatalf("search by cpf digits: expected 1 entry, got %d", len(entries))
		}
	}

	// 7) Admin provisiona conta limitada
	{
		st, body := doReq(t, ts.URL, "POST", "/usuarios", adminToken, map[string]any{
			"email": "balcao@clinica.com",
			"nome":  "Atendente Balcão",
			"senha": "senha-do-balcao",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating user, got %d body=%s", st, body)
		}
	}

	// 8) Login da conta limitada
	limitedToken := login(t, ts.URL, "balcao@clinica.com", "senha-do-balcao")

	// 9) A sessão limitada resolve com papel teste
	{
		st, body := doReq(t, ts.URL, "GET", "/session", limitedToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 session, got %d", st)
		}
		var id map[string]any
		_ = json.Unmarshal(body, &id)
		if id["kind"] != "limited" || id["role"] != "teste" {
			t.Fatalf("limited identity = %v", id)
		}
	}

	// 10) Limitado enxerga a listagem e cadastra, mas não edita nem
	// exclui nem vê atendimentos
	{
		st, _ := doReq(t, ts.URL, "GET", "/animais", limitedToken, nil)
		if st != http.StatusOK {
			t.Fatalf("limited listing: expected 200, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/tutores", limitedToken, map[string]any{
			"nome":     "João Lima",
			"telefone": "(11) 97777-6666",
		})
		if st != http.StatusCreated {
			t.Fatalf("limited create tutor: expected 201, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "PATCH", "/tutores/"+tutorID, limitedToken, map[string]any{
			"nome": "Outro Nome",
		})
		if st != http.StatusForbidden {
			t.Fatalf("limited patch tutor: expected 403, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/animais/"+animalID+"/atendimentos", limitedToken, nil)
		if st != http.StatusForbidden {
			t.Fatalf("limited list visits: expected 403, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/animais/"+animalID+"/exportar", limitedToken, nil)
		if st != http.StatusForbidden {
			t.Fatalf("limited export: expected 403, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/animais/"+animalID, limitedToken, nil)
		if st != http.StatusForbidden {
			t.Fatalf("limited delete animal: expected 403, got %d", st)
		}
	}

	// 11) Excluir tutor com animal é bloqueado
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/tutores/"+tutorID, adminToken, nil)
		if st != http.StatusConflict {
			t.Fatalf("delete tutor with animals: expected 409, got %d", st)
		}
	}

	// 12) Exportação devolve a planilha
	{
		st, body := doReq(t, ts.URL, "GET", "/animais/"+animalID+"/exportar", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("export: expected 200, got %d", st)
		}
		if len(body) == 0 {
			t.Fatal("export: empty body")
		}
	}

	// 13) Cascade: excluir o animal some com ele e com o histórico
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animais/"+animalID, adminToken, nil)
		if st != http.StatusNoContent {
			t.Fatalf("delete animal: expected 204, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/animais", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("listing after delete: expected 200, got %d", st)
		}
		var entries []map[string]any
		_ = json.Unmarshal(body, &entries)
		if len(entries) != 0 {
			t.Fatalf("animal ainda listado depois do cascade: %v", entries)
		}

		st, _ = doReq(t, ts.URL, "GET", "/animais/"+animalID+"/atendimentos", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("visits after delete: expected 200, got %d", st)
		}
	}

	// 14) Agora o tutor pode ser excluído
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/tutores/"+tutorID, adminToken, nil)
		if st != http.StatusNoContent {
			t.Fatalf("delete tutor: expected 204, got %d", st)
		}
	}

	// 15) Logout invalida a sessão limitada
	{
		st, _ := doReq(t, ts.URL, "POST", "/logout", limitedToken, nil)
		if st != http.StatusNoContent {
			t.Fatalf("logout: expected 204, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/session", limitedToken, nil)
		if st != http.StatusOK {
			t.Fatalf("session after logout: expected 200, got %d", st)
		}
		var id map[string]any
		_ = json.Unmarshal(body, &id)
		if id["kind"] != "anonymous" {
			t.Fatalf("session after logout should be anonymous, got %v", id)
		}
	}
}

func TestHTTP_LoginFailureIsUniform(t *testing.T) {
	provider := newFakeProvider("vet@clinica.com", "segredo-forte")
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthProvider: provider}))
	defer ts.Close()

	for _, creds := range []map[string]any{
		{"email": "vet@clinica.com", "senha": "errada"},
		{"email": "ninguem@clinica.com", "senha": "tanto-faz"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/login", "", creds)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", st)
		}
		if msg := strings.TrimSpace(string(body)); msg != "invalid credentials" {
			t.Fatalf("mensagem deveria ser uniforme, veio %q", msg)
		}
	}
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/login", "", map[string]any{
		"email": email,
		"senha": password,
	})
	if st != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", email, st, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.Token == "" {
		t.Fatalf("login %s: token ausente (err=%v body=%s)", email, err, body)
	}
	return out.Token
}

func createResource(t *testing.T, baseURL, path, token string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", path, token, payload)
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, body)
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.ID == "" {
		t.Fatalf("POST %s: id ausente (err=%v body=%s)", path, err, body)
	}
	return out.ID
}

func doReq(t *testing.T, baseURL, method, path, token string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}
