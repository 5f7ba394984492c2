package validation

import (
	"strconv"
	"strings"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

// ParseID coerces a raw id to its numeric key. Malformed input is an
// InvalidReference, never a NotFound.
func ParseID(kind domainagg.Kind, raw string) (uint, error) {
	trimmed := strings.TrimSpace(raw)
	id, err := strconv.ParseUint(trimmed, 10, 0)
	if err != nil {
		return 0, domainagg.InvalidReference(kind, raw)
	}
	return uint(id), nil
}
