package validation

import (
	"strings"

	"github.com/paemuri/brdoc"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

// NormalizeCpfCnpj strips punctuation, keeping digits only, so
// "529.982.247-25" and "52998224725" are the same identifier.
func NormalizeCpfCnpj(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCpfCnpj normalizes raw and checks it is a CPF (11 digits) or a
// CNPJ (14 digits) with correct check digits.
func ValidateCpfCnpj(raw string) (string, error) {
	digits := NormalizeCpfCnpj(raw)
	switch {
	case len(digits) == 11 && brdoc.IsCPF(digits):
		return digits, nil
	case len(digits) == 14 && brdoc.IsCNPJ(digits):
		return digits, nil
	}
	return "", domainagg.Invalid(domainagg.KindProducer, "cpf_cnpj", "invalid CPF or CNPJ")
}
