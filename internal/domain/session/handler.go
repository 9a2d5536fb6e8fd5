package session

import (
	"encoding/json"
	"errors"
	"net/http"


	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))
	r.Post("/logout", logoutHandler(svc))
	r.Get("/session", sessionHandler())
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type identityResponse struct {
	Kind   Kind   `json:"kind"`
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"nome,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Identity identityResponse `json:"identity"`
}

// loginHandler godoc
// @Summary Login (atendente ou admin)
// @Description Tenta primeiro a conta limitada de atendente; se não houver correspondência, tenta o provedor de admin com as mesmas credenciais. Falha de qualquer caminho responde 401 genérico.
// @Tags session
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciais"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "invalid credentials"
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token:    res.Token,
			Identity: toIdentityResponse(res.Identity),
		})
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Logout(r.Context(), sess.Token); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// sessionHandler devolve a identidade resolvida do token atual (ou anônimo).
func sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			sess.Identity = Anonymous()
		}
		writeJSON(w, http.StatusOK, toIdentityResponse(sess.Identity))
	}
}

func toIdentityResponse(id Identity) identityResponse {
	return identityResponse{
		Kind:   id.Kind,
		UserID: id.UserID,
		Name:   id.Name,
		Email:  id.Email,
		Role:   string(id.Role()),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
