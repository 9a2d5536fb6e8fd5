package tutors

import "strings"

// OnlyDigits remove tudo que não for dígito.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF valida os dois dígitos verificadores (módulo 11) de um CPF.
// Sequências de dígito repetido ("111.111.111-11") são inválidas mesmo
// quando o checksum bate.
func ValidCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return false
	}

	repeated := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit calcula o dígito verificador sobre os primeiros n dígitos,
// com pesos n+1..2.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 || rem == 11 {
		rem = 0
	}
	return rem
}
