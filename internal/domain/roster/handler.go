package roster

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/authz"
	"vet-clinic-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Renderer transforma o documento paginado em bytes de algum formato de
// arquivo. A implementação padrão gera planilha xlsx.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

func RegisterRoutes(r chi.Router, cache *Cache, renderer Renderer) {
	r.Get("/animais", listRosterHandler(cache))
	r.Get("/animais/{animalID}/exportar", exportHandler(cache, renderer))
}

type rosterTutorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
}

type rosterEntryResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"nome"`
	Species   string               `json:"especie"`
	Breed     string               `json:"raca,omitempty"`
	Sex       string               `json:"sexo"`
	Color     string               `json:"cor,omitempty"`
	Weight    float64              `json:"peso"`
	BirthDate time.Time            `json:"data_nascimento"`
	JoinDate  time.Time            `json:"data_adesao"`
	Age       string               `json:"idade"`
	TutorName string               `json:"tutor_nome"`
	Tutor     *rosterTutorResponse `json:"tutor,omitempty"`
}

// listRosterHandler godoc
// @Summary Listar e buscar animais
// @Description Lista os animais com tutor resolvido, mais recentes primeiro. O parâmetro busca filtra por nome do animal, nome do tutor ou dígitos do CPF. Ambos os papéis enxergam a listagem.
// @Tags listagem
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param busca query string false "Termo de busca"
// @Success 200 {array} rosterEntryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /animais [get]
func listRosterHandler(cache *Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !sess.Identity.Actor().Can(authz.CapViewRoster) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		entries := cache.Search(r.URL.Query().Get("busca"))
		now := time.Now()

		out := make([]rosterEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, toEntryResponse(e, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// exportHandler godoc
// @Summary Exportar histórico clínico
// @Description Gera a planilha com dados do animal, do tutor e todos os atendimentos. Somente admin.
// @Tags listagem
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Bearer token"
// @Param animalID path string true "ID do animal"
// @Success 200 {file} binary
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID}/exportar [get]
func exportHandler(cache *Cache, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !sess.Identity.Actor().Can(authz.CapExport) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		doc, ok := cache.BuildExportDocument(chi.URLParam(r, "animalID"), time.Now())
		if !ok {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		data, err := renderer.Render(doc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func toEntryResponse(e Entry, now time.Time) rosterEntryResponse {
	a := e.Animal
	resp := rosterEntryResponse{
		ID:        a.ID,
		Name:      a.Name,
		Species:   string(a.Species),
		Breed:     a.Breed,
		Sex:       string(a.Sex),
		Color:     a.Color,
		Weight:    a.Weight,
		BirthDate: a.BirthDate,
		JoinDate:  a.JoinDate,
		Age:       animals.FormatAge(a.BirthDate, now),
		TutorName: e.TutorName(),
	}
	if e.Tutor != nil {
		resp.Tutor = &rosterTutorResponse{
			ID:    e.Tutor.ID,
			Name:  e.Tutor.Name,
			Phone: e.Tutor.Phone,
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
