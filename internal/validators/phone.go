package validators

import "strings"

// NormalizePhone reduz o telefone aos dígitos, aceitando máscaras comuns
// como "(11) 98765-4321" ou "+55 11 98765-4321". Telefones fora da faixa
// de 8 a 13 dígitos são rejeitados.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < 8 || len(digits) > 13 {
		return "", false
	}
	return digits, true
}
