package animals

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
	r.Post("/animais", createAnimalHandler(svc))
	r.Patch("/animais/{animalID}", updateAnimalHandler(svc))
	r.Delete("/animais/{animalID}", deleteAnimalHandler(svc))
}

type createAnimalRequest struct {
	TutorID   string  `json:"tutor_id"`
	Name      string  `json:"nome"`
	Species   Species `json:"especie"`
	Breed     string  `json:"raca"`
	Sex       Sex     `json:"sexo"`
	Color     string  `json:"cor"`
	Weight    float64 `json:"peso"`
	BirthDate string  `json:"data_nascimento"` // YYYY-MM-DD
}

type updateAnimalRequest struct {
	// Ponteiros para PATCH real: nil = não tocar.
	TutorID   *string  `json:"tutor_id"`
	Name      *string  `json:"nome"`
	Species   *Species `json:"especie"`
	Breed     *string  `json:"raca"`
	Sex       *Sex     `json:"sexo"`
	Color     *string  `json:"cor"`
	Weight    *float64 `json:"peso"`
	BirthDate *string  `json:"data_nascimento"` // YYYY-MM-DD
}

type animalResponse struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutor_id"`
	Name      string    `json:"nome"`
	Species   Species   `json:"especie"`
	Breed     string    `json:"raca"`
	Sex       Sex       `json:"sexo"`
	Color     string    `json:"cor"`
	Weight    float64   `json:"peso"`
	BirthDate time.Time `json:"data_nascimento"`
	Age       string    `json:"idade"`
	JoinDate  time.Time `json:"data_adesao"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		birth, err := parseDate(req.BirthDate)
		if err != nil {
			http.Error(w, "data_nascimento must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.Register(r.Context(), sess.Identity.Actor(), RegisterInput{
			TutorID:   req.TutorID,
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Sex:       req.Sex,
			Color:     req.Color,
			Weight:    req.Weight,
			BirthDate: birth,
		})
		if err != nil {
			writeAnimalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a, time.Now()))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			TutorID: req.TutorID,
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Sex:     req.Sex,
			Color:   req.Color,
			Weight:  req.Weight,
		}
		if req.BirthDate != nil {
			birth, err := parseDate(*req.BirthDate)
			if err != nil || birth.IsZero() {
				http.Error(w, "data_nascimento must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.BirthDate = &birth
		}

		a, err := svc.Update(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			writeAnimalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a, time.Now()))
	}
}

// deleteAnimalHandler godoc
// @Summary Excluir animal (com cascade)
// @Description Apaga primeiro todos os atendimentos do animal e depois o animal. Quando um passo falha, a resposta indica qual (header X-Failed-Step) para permitir retry só do passo restante.
// @Tags animais
// @Param animalID path string true "ID do animal"
// @Success 204
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), sess.Identity.Actor(), chi.URLParam(r, "animalID")); err != nil {
			var cascade *CascadeError
			if errors.As(err, &cascade) {
				w.Header().Set("X-Failed-Step", string(cascade.Step))
				http.Error(w, cascade.Error(), http.StatusInternalServerError)
				return
			}
			writeAnimalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeAnimalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTutorNotFound):
		http.Error(w, "tutor not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(a Animal, now time.Time) animalResponse {
	return animalResponse{
		ID:        a.ID,
		TutorID:   a.TutorID,
		Name:      a.Name,
		Species:   a.Species,
		Breed:     a.Breed,
		Sex:       a.Sex,
		Color:     a.Color,
		Weight:    a.Weight,
		BirthDate: a.BirthDate,
		Age:       FormatAge(a.BirthDate, now),
		JoinDate:  a.JoinDate,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
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
