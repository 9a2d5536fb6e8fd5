package tutors

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tutores", func(tr chi.Router) {
		tr.Post("/", createTutorHandler(svc))
		tr.Get("/", listTutorsHandler(svc))
		tr.Patch("/{tutorID}", updateTutorHandler(svc))
		tr.Delete("/{tutorID}", deleteTutorHandler(svc))
	})
}

type createTutorRequest struct {
	Name    string `json:"nome"`
	CPF     string `json:"cpf"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	Address string `json:"endereco"`
}

type updateTutorRequest struct {
	// Ponteiros para PATCH real: nil = não tocar.
	Name    *string `json:"nome"`
	CPF     *string `json:"cpf"`
	Phone   *string `json:"telefone"`
	Email   *string `json:"email"`
	Address *string `json:"endereco"`
}

type tutorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf,omitempty"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func createTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createTutorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Register(r.Context(), sess.Identity.Actor(), RegisterInput{
			Name:    req.Name,
			CPF:     req.CPF,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
		})
		if err != nil {
			writeTutorError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTutorResponse(t))
	}
}

func listTutorsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), sess.Identity.Actor())
		if err != nil {
			writeTutorError(w, err)
			return
		}

		out := make([]tutorResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTutorResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateTutorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Update(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "tutorID"), UpdateInput{
			Name:    req.Name,
			CPF:     req.CPF,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
		})
		if err != nil {
			writeTutorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTutorResponse(t))
	}
}

func deleteTutorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "tutorID")); err != nil {
			writeTutorError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTutorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidCPF):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "tutor not found", http.StatusNotFound)
	case errors.Is(err, ErrTutorHasAnimals):
		http.Error(w, "tutor has animals", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toTutorResponse(t Tutor) tutorResponse {
	return tutorResponse{
		ID:        t.ID,
		Name:      t.Name,
		CPF:       t.CPF,
		Phone:     t.Phone,
		Email:     t.Email,
		Address:   t.Address,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// writeJSON é duplicado de propósito entre os handlers dos módulos;
// extrair um helper comum só quando se repetir mais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
