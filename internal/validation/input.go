package validation

import (
	"net/mail"
	"strings"
	"unicode"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

// RequireText trims value and rejects it when empty.
func RequireText(kind domainagg.Kind, field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainagg.Invalid(kind, field, field+" is required")
	}
	return value, nil
}

// RequireID rejects a missing (zero) foreign key.
func RequireID(kind domainagg.Kind, field string, id uint) error {
	if id == 0 {
		return domainagg.Invalid(kind, field, field+" is required")
	}
	return nil
}

// NormalizeUF upper-cases a two-letter state code.
func NormalizeUF(raw string) (string, error) {
	uf := strings.ToUpper(strings.TrimSpace(raw))
	if len(uf) != 2 || !unicode.IsLetter(rune(uf[0])) || !unicode.IsLetter(rune(uf[1])) {
		return "", domainagg.Invalid(domainagg.KindState, "uf", "uf must be a two-letter state code")
	}
	return uf, nil
}

// NormalizeEmail trims and shape-checks an e-mail address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domainagg.Invalid(domainagg.KindUser, "email", "email is not a valid address")
	}
	return email, nil
}

// RequirePassword enforces a minimum length before hashing.
func RequirePassword(raw string) error {
	if len(raw) < 6 {
		return domainagg.Invalid(domainagg.KindUser, "password", "password must have at least 6 characters")
	}
	return nil
}
