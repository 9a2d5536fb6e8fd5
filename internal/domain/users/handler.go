package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic-records/internal/domain/session/identity"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/usuarios", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))
		ur.Delete("/{userID}", deactivateUserHandler(svc))
	})
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"nome"`
	Password string `json:"senha"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"nome"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

// createUserHandler godoc
// @Summary Provisionar conta de atendente
// @Description Cria uma conta limitada (papel teste). Somente admin. A senha nunca volta na resposta.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body createUserRequest true "Dados da conta"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "invalid json / campos obrigatórios"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /usuarios [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := identity.FromContext(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Create(r.Context(), sess.Identity.Actor(), CreateInput{
			Email:    req.Email,
			Name:     req.Name,
			Password: req.Password,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := identity.FromContext(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), sess.Identity.Actor())
		if err != nil {
			writeUserError(w, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deactivateUserHandler desliga a conta. Novos logins passam a ser
// recusados; sessões já emitidas valem até expirar no store.
func deactivateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := identity.FromContext(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.Deactivate(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "userID"))
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "usuario not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
