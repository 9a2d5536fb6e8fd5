// Package excel renderiza o documento de exportação como planilha xlsx,
// uma aba por página.
package excel

import (
	"bytes"
	"fmt"

	"vet-clinic-records/internal/domain/roster"

	"github.com/xuri/excelize/v2"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(doc roster.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, err
	}
	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for i, page := range doc.Pages {
		sheet := fmt.Sprintf("Página %d", i+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
			return nil, err
		}

		row := 1
		for _, line := range page.Lines {
			switch line.Kind {
			case roster.LineTitle:
				cell := fmt.Sprintf("A%d", row)
				if err := f.SetCellValue(sheet, cell, line.Text); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
					return nil, err
				}
			case roster.LineHeading:
				if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Text); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(sheet,
					fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headingStyle); err != nil {
					return nil, err
				}
			case roster.LineField:
				cell := fmt.Sprintf("A%d", row)
				if err := f.SetCellValue(sheet, cell, line.Label); err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(sheet, cell, cell, labelStyle); err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Text); err != nil {
					return nil, err
				}
			case roster.LineText:
				if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Text); err != nil {
					return nil, err
				}
			case roster.LineSpacer:
				// linha em branco
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
