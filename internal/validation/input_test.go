package validation

import (
	"testing"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

func TestParseID(t *testing.T) {
	id, err := ParseID(domainagg.KindHarvest, " 42 ")
	if err != nil || id != 42 {
		t.Fatalf("ParseID: id=%d err=%v", id, err)
	}
	for _, raw := range []string{"", "abc", "-1", "1.5", "12a"} {
		_, err := ParseID(domainagg.KindHarvest, raw)
		if !domainagg.IsCode(err, domainagg.CodeInvalidReference) {
			t.Fatalf("ParseID(%q): expected invalid_reference, got %v", raw, err)
		}
		if domainagg.KindOf(err) != domainagg.KindHarvest {
			t.Fatalf("ParseID(%q): expected harvest kind", raw)
		}
	}
}

func TestNormalizeUF(t *testing.T) {
	uf, err := NormalizeUF(" sp ")
	if err != nil || uf != "SP" {
		t.Fatalf("NormalizeUF: uf=%q err=%v", uf, err)
	}
	for _, raw := range []string{"", "S", "SPX", "1A"} {
		if _, err := NormalizeUF(raw); !domainagg.IsCode(err, domainagg.CodeValidation) {
			t.Fatalf("NormalizeUF(%q): expected validation error, got %v", raw, err)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got, err := NormalizeEmail(" ana@example.com "); err != nil || got != "ana@example.com" {
		t.Fatalf("NormalizeEmail: got=%q err=%v", got, err)
	}
	for _, raw := range []string{"", "ana", "Ana <ana@example.com>", "ana@"} {
		if _, err := NormalizeEmail(raw); !domainagg.IsCode(err, domainagg.CodeValidation) {
			t.Fatalf("NormalizeEmail(%q): expected validation error, got %v", raw, err)
		}
	}
}

func TestRequireText(t *testing.T) {
	if got, err := RequireText(domainagg.KindCity, "name", "  Campinas "); err != nil || got != "Campinas" {
		t.Fatalf("RequireText: got=%q err=%v", got, err)
	}
	if _, err := RequireText(domainagg.KindCity, "name", "   "); domainagg.DetailsOf(err)["field"] != "name" {
		t.Fatalf("RequireText: expected field detail, got %v", err)
	}
	if err := RequireID(domainagg.KindCultivation, "harvest_id", 0); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("RequireID: expected validation error, got %v", err)
	}
}
