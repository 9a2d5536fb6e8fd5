package roster

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/tutors"
	"vet-clinic-records/internal/domain/visits"
)

func TestBuildExportDocument_Basics(t *testing.T) {
	c := seedCache()
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

	doc, ok := c.BuildExportDocument("a1", now)
	if !ok {
		t.Fatal("animal existe, documento deveria ter sido montado")
	}

	if doc.Title != "Histórico Clínico - Rex" {
		t.Errorf("título: %q", doc.Title)
	}
	if doc.Filename != "historico_rex_2024-03-20.xlsx" {
		t.Errorf("nome do arquivo: %q", doc.Filename)
	}
	if len(doc.Pages) == 0 {
		t.Fatal("documento sem páginas")
	}

	// Atendimentos em data decrescente: o de 08/03 vem antes do de 02/03.
	var dates []string
	for _, pg := range doc.Pages {
		for _, l := range pg.Lines {
			if l.Kind == LineField && l.Label == "Data" {
				dates = append(dates, l.Text)
			}
		}
	}
	if len(dates) != 2 || dates[0] != "08/03/2024" || dates[1] != "02/03/2024" {
		t.Errorf("datas na ordem errada: %v", dates)
	}
}

func TestBuildExportDocument_UnknownAnimal(t *testing.T) {
	c := seedCache()

	if _, ok := c.BuildExportDocument("ghost", time.Now()); ok {
		t.Fatal("animal inexistente não deveria gerar documento")
	}
}

func TestBuildExportDocument_NoVisits(t *testing.T) {
	c := seedCache()

	doc, ok := c.BuildExportDocument("a2", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("documento deveria ter sido montado")
	}

	found := false
	for _, l := range doc.Pages[0].Lines {
		if l.Kind == LineText && strings.Contains(l.Text, "Nenhum atendimento") {
			found = true
		}
	}
	if !found {
		t.Error("faltou a linha de histórico vazio")
	}
}

func TestBuildExportDocument_PageBreak(t *testing.T) {
	c := NewCache()
	c.Load(
		[]tutors.Tutor{{ID: "t1", Name: "Maria Souza", Phone: "11988887777"}},
		[]animals.Animal{{ID: "a1", TutorID: "t1", Name: "Rex", Species: animals.SpeciesCao, JoinDate: day(1)}},
		nil,
	)
	// Atendimentos suficientes para estourar uma página A4.
	for i := 0; i < 40; i++ {
		c.VisitSaved(visits.Visit{
			ID:           fmt.Sprintf("v%02d", i),
			AnimalID:     "a1",
			Date:         day(1).AddDate(0, 0, i),
			Veterinarian: "Dra. Helena",
			Symptoms:     "apatia",
			Diagnosis:    "virose",
			Treatment:    "repouso",
		})
	}

	doc, ok := c.BuildExportDocument("a1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("documento deveria ter sido montado")
	}
	if len(doc.Pages) < 2 {
		t.Fatalf("esperava quebra de página, veio %d página(s)", len(doc.Pages))
	}
	for i, pg := range doc.Pages {
		if len(pg.Lines) == 0 {
			t.Errorf("página %d vazia", i)
		}
		var h float64
		for _, l := range pg.Lines {
			h += lineHeight(l.Kind)
		}
		if h > pageHeight-marginTop-marginBottom+heightTitle {
			t.Errorf("página %d estourou a altura útil: %.0f", i, h)
		}
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Rex":            "rex",
		"Bola de Neve":   "bola_de_neve",
		"  Tico & Teco ": "tico_teco",
		"***":            "animal",
	}
	for in, want := range cases {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, esperava %q", in, got, want)
		}
	}
}
