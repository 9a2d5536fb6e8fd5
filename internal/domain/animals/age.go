package animals

import (
	"fmt"
	"time"
)

// FormatAge deriva a idade exibida a partir da data de nascimento.
// Não é campo persistido; sempre computada na leitura.
//   - < 30 dias: "N dias"
//   - < 365 dias: meses inteiros ("1 mês", "5 meses")
//   - senão: anos inteiros mais os meses do resto quando > 0
//     ("1 ano", "1 ano e 1 mês", "2 anos e 3 meses")
func FormatAge(birth, now time.Time) string {
	days := int(now.Sub(birth).Hours() / 24)
	if days < 0 {
		days = 0
	}

	if days < 30 {
		return fmt.Sprintf("%d dias", days)
	}
	if days < 365 {
		months := days / 30
		return fmt.Sprintf("%d %s", months, plural(months, "mês", "meses"))
	}

	years := days / 365
	months := (days % 365) / 30
	out := fmt.Sprintf("%d %s", years, plural(years, "ano", "anos"))
	if months > 0 {
		out += fmt.Sprintf(" e %d %s", months, plural(months, "mês", "meses"))
	}
	return out
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
