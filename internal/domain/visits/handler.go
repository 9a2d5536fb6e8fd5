package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vet-clinic-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animais/{animalID}/atendimentos", func(vr chi.Router) {
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/", listVisitsHandler(svc))
	})
	r.Patch("/atendimentos/{visitID}", updateVisitHandler(svc))
	r.Delete("/atendimentos/{visitID}", deleteVisitHandler(svc))
}

type createVisitRequest struct {
	Date         string `json:"data"` // YYYY-MM-DD
	Veterinarian string `json:"veterinario"`
	Symptoms     string `json:"sintomas"`
	Diagnosis    string `json:"diagnostico"`
	Treatment    string `json:"tratamento"`
	Medications  string `json:"medicamentos"`
	Notes        string `json:"observacoes"`
	NextReturn   string `json:"proximo_retorno"` // YYYY-MM-DD opcional
}

type visitResponse struct {
	ID           string     `json:"id"`
	AnimalID     string     `json:"animal_id"`
	Date         time.Time  `json:"data"`
	Veterinarian string     `json:"veterinario"`
	Symptoms     string     `json:"sintomas"`
	Diagnosis    string     `json:"diagnostico"`
	Treatment    string     `json:"tratamento"`
	Medications  string     `json:"medicamentos"`
	Notes        string     `json:"observacoes"`
	NextReturn   *time.Time `json:"proximo_retorno,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// createVisitHandler godoc
// @Summary Registrar atendimento
// @Description Cria um atendimento para o animal indicado. Somente admin; o papel limitado nunca cria nem consulta atendimentos.
// @Tags atendimentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param animalID path string true "ID do animal"
// @Param payload body createVisitRequest true "Dados do atendimento; datas em YYYY-MM-DD"
// @Success 201 {object} visitResponse
// @Failure 400 {string} string "invalid json / campos obrigatórios"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID}/atendimentos [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			http.Error(w, "data must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var next *time.Time
		if strings.TrimSpace(req.NextReturn) != "" {
			t, err := parseDate(req.NextReturn)
			if err != nil {
				http.Error(w, "proximo_retorno must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			next = &t
		}

		v, err := svc.Register(r.Context(), sess.Identity.Actor(), RegisterInput{
			AnimalID:     chi.URLParam(r, "animalID"),
			Date:         date,
			Veterinarian: req.Veterinarian,
			Symptoms:     req.Symptoms,
			Diagnosis:    req.Diagnosis,
			Treatment:    req.Treatment,
			Medications:  req.Medications,
			Notes:        req.Notes,
			NextReturn:   next,
		})
		if err != nil {
			writeVisitError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

// listVisitsHandler godoc
// @Summary Histórico de atendimentos do animal
// @Description Lista os atendimentos em ordem de data decrescente. Somente admin.
// @Tags atendimentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param animalID path string true "ID do animal"
// @Success 200 {array} visitResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /animais/{animalID}/atendimentos [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByAnimal(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeVisitError(w, err)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Decodifica para map primeiro: "proximo_retorno": null precisa ser
		// distinguível de campo não enviado.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{}
		if err := applyStringField(raw, "veterinario", &in.Veterinarian); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyStringField(raw, "sintomas", &in.Symptoms); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyStringField(raw, "diagnostico", &in.Diagnosis); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyStringField(raw, "tratamento", &in.Treatment); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyStringField(raw, "medicamentos", &in.Medications); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := applyStringField(raw, "observacoes", &in.Notes); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if v, exists := raw["data"]; exists {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				http.Error(w, "data must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			d, err := parseDate(s)
			if err != nil || d.IsZero() {
				http.Error(w, "data must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.Date = &d
		}

		if v, exists := raw["proximo_retorno"]; exists {
			in.NextReturnSet = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "proximo_retorno must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				d, err := parseDate(s)
				if err != nil || d.IsZero() {
					http.Error(w, "proximo_retorno must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				in.NextReturn = &d
			}
		}

		updated, err := svc.Update(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "visitID"), in)
		if err != nil {
			writeVisitError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toVisitResponse(updated))
	}
}

func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "visitID")); err != nil {
			writeVisitError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func applyStringField(raw map[string]json.RawMessage, key string, dst **string) error {
	v, exists := raw[key]
	if !exists {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return errors.New(key + " must be a string")
	}
	*dst = &s
	return nil
}

func writeVisitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrAnimalNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "atendimento not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:           v.ID,
		AnimalID:     v.AnimalID,
		Date:         v.Date,
		Veterinarian: v.Veterinarian,
		Symptoms:     v.Symptoms,
		Diagnosis:    v.Diagnosis,
		Treatment:    v.Treatment,
		Medications:  v.Medications,
		Notes:        v.Notes,
		NextReturn:   v.NextReturn,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
