package roster

import (
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/animals"
)

// LineKind distingue os estilos de linha que o renderizador aplica.
type LineKind int

const (
	LineTitle LineKind = iota
	LineHeading
	LineField
	LineText
	LineSpacer
)

type Line struct {
	Kind  LineKind
	Label string // preenchido apenas em LineField
	Text  string
}

type Page struct {
	Lines []Line
}

// Document é a saída paginada da exportação, pronta para um renderizador
// (planilha, PDF). A paginação acontece aqui para o layout ser o mesmo em
// qualquer formato.
type Document struct {
	Title    string
	Filename string
	Pages    []Page
}

// Alturas em pontos, papel A4 retrato.
const (
	pageHeight   = 842.0
	marginTop    = 48.0
	marginBottom = 48.0

	heightTitle   = 28.0
	heightHeading = 22.0
	heightField   = 16.0
	heightText    = 16.0
	heightSpacer  = 10.0
)

func lineHeight(k LineKind) float64 {
	switch k {
	case LineTitle:
		return heightTitle
	case LineHeading:
		return heightHeading
	case LineField:
		return heightField
	case LineSpacer:
		return heightSpacer
	default:
		return heightText
	}
}

// paginator acumula linhas e abre página nova quando a posição vertical
// estoura o papel, como um cursor de escrita.
type paginator struct {
	pages []Page
	cur   Page
	y     float64
}

func newPaginator() *paginator {
	return &paginator{y: marginTop}
}

func (p *paginator) add(l Line) {
	h := lineHeight(l.Kind)
	if p.y+h > pageHeight-marginBottom && len(p.cur.Lines) > 0 {
		p.breakPage()
	}
	p.cur.Lines = append(p.cur.Lines, l)
	p.y += h
}

func (p *paginator) breakPage() {
	p.pages = append(p.pages, p.cur)
	p.cur = Page{}
	p.y = marginTop
}

func (p *paginator) done() []Page {
	if len(p.cur.Lines) > 0 {
		p.pages = append(p.pages, p.cur)
	}
	return p.pages
}

// BuildExportDocument monta o histórico completo de um animal: dados do
// animal, dados do tutor e os atendimentos em data decrescente. now entra
// como parâmetro para a idade e o nome do arquivo serem determinísticos.
func (c *Cache) BuildExportDocument(animalID string, now time.Time) (Document, bool) {
	e, ok := c.EntryByAnimal(animalID)
	if !ok {
		return Document{}, false
	}
	history := c.VisitsByAnimal(animalID)

	a := e.Animal
	p := newPaginator()

	p.add(Line{Kind: LineTitle, Text: "Histórico Clínico - " + a.Name})
	p.add(Line{Kind: LineText, Text: "Gerado em " + now.Format("02/01/2006")})
	p.add(Line{Kind: LineSpacer})

	p.add(Line{Kind: LineHeading, Text: "DADOS DO ANIMAL"})
	p.add(Line{Kind: LineField, Label: "Nome", Text: a.Name})
	p.add(Line{Kind: LineField, Label: "Espécie", Text: string(a.Species)})
	if a.Breed != "" {
		p.add(Line{Kind: LineField, Label: "Raça", Text: a.Breed})
	}
	p.add(Line{Kind: LineField, Label: "Sexo", Text: string(a.Sex)})
	if a.Color != "" {
		p.add(Line{Kind: LineField, Label: "Cor", Text: a.Color})
	}
	p.add(Line{Kind: LineField, Label: "Peso", Text: fmt.Sprintf("%.1f kg", a.Weight)})
	p.add(Line{Kind: LineField, Label: "Idade", Text: animals.FormatAge(a.BirthDate, now)})
	p.add(Line{Kind: LineField, Label: "Cliente desde", Text: a.JoinDate.Format("02/01/2006")})
	p.add(Line{Kind: LineSpacer})

	p.add(Line{Kind: LineHeading, Text: "DADOS DO TUTOR"})
	if e.Tutor == nil {
		p.add(Line{Kind: LineText, Text: "Tutor desconhecido"})
	} else {
		t := e.Tutor
		p.add(Line{Kind: LineField, Label: "Nome", Text: t.Name})
		p.add(Line{Kind: LineField, Label: "Telefone", Text: t.Phone})
		if t.CPF != "" {
			p.add(Line{Kind: LineField, Label: "CPF", Text: t.CPF})
		}
		if t.Email != "" {
			p.add(Line{Kind: LineField, Label: "E-mail", Text: t.Email})
		}
		if t.Address != "" {
			p.add(Line{Kind: LineField, Label: "Endereço", Text: t.Address})
		}
	}
	p.add(Line{Kind: LineSpacer})

	p.add(Line{Kind: LineHeading, Text: fmt.Sprintf("ATENDIMENTOS (%d)", len(history))})
	if len(history) == 0 {
		p.add(Line{Kind: LineText, Text: "Nenhum atendimento registrado."})
	}
	for _, v := range history {
		p.add(Line{Kind: LineSpacer})
		p.add(Line{Kind: LineField, Label: "Data", Text: v.Date.Format("02/01/2006")})
		p.add(Line{Kind: LineField, Label: "Veterinário(a)", Text: v.Veterinarian})
		p.add(Line{Kind: LineField, Label: "Sintomas", Text: v.Symptoms})
		p.add(Line{Kind: LineField, Label: "Diagnóstico", Text: v.Diagnosis})
		p.add(Line{Kind: LineField, Label: "Tratamento", Text: v.Treatment})
		if v.Medications != "" {
			p.add(Line{Kind: LineField, Label: "Medicamentos", Text: v.Medications})
		}
		if v.Notes != "" {
			p.add(Line{Kind: LineField, Label: "Observações", Text: v.Notes})
		}
		if v.NextReturn != nil {
			p.add(Line{Kind: LineField, Label: "Próximo retorno", Text: v.NextReturn.Format("02/01/2006")})
		}
	}

	return Document{
		Title:    "Histórico Clínico - " + a.Name,
		Filename: fmt.Sprintf("historico_%s_%s.xlsx", slug(a.Name), now.Format("2006-01-02")),
		Pages:    p.done(),
	}, true
}

// slug reduz o nome do animal a minúsculas ASCII seguras para arquivo.
func slug(s string) string {
	var b strings.Builder
	prevUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "_")
	if out == "" {
		return "animal"
	}
	return out
}
