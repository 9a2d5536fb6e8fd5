package animals

import (
	"testing"
	"time"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		daysAgo int
		want    string
	}{
		{10, "10 dias"},
		{29, "29 dias"},
		{30, "1 mês"},
		{40, "1 mês"},
		{65, "2 meses"},
		{364, "12 meses"},
		{365, "1 ano"},
		{400, "1 ano e 1 mês"},
		{380, "1 ano"}, // resto < 30 dias
		{830, "2 anos e 3 meses"},
	}
	for _, tc := range cases {
		birth := now.AddDate(0, 0, -tc.daysAgo)
		if got := FormatAge(birth, now); got != tc.want {
			t.Fatalf("FormatAge(%d days ago) = %q, want %q", tc.daysAgo, got, tc.want)
		}
	}
}

func TestFormatAge_FutureBirthDateClampsToZero(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	if got := FormatAge(now.AddDate(0, 0, 3), now); got != "0 dias" {
		t.Fatalf("got %q", got)
	}
}
