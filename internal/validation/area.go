package validation

import (
	"encoding/json"
	"math"

	"github.com/yungbote/agroregistry-backend/internal/domain/agro"
	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

// CoerceArea turns any supported area input into hectares. Numeric strings
// are parsed (a comma works as decimal separator); anything else is 0.
func CoerceArea(v any) float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case agro.Area:
		f = float64(t)
	case *agro.Area:
		if t == nil {
			return 0
		}
		f = float64(*t)
	case json.Number:
		return agro.ParseArea(t.String())
	case string:
		return agro.ParseArea(t)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ValidateAreaTotalCanNotBeGreater fails with AreaInvariantViolation when
// arable + vegetation > total. Areas are compared in whole hundredths of a
// hectare, the scale they are stored at.
func ValidateAreaTotalCanNotBeGreater(arable, vegetation, total any) error {
	a := agro.Hundredths(CoerceArea(arable))
	v := agro.Hundredths(CoerceArea(vegetation))
	t := agro.Hundredths(CoerceArea(total))
	if a+v > t {
		return domainagg.AreaInvariantViolation(hectares(a), hectares(v), hectares(t))
	}
	return nil
}

func hectares(hundredths int64) float64 { return float64(hundredths) / 100 }

// ValidateAreaNonNegative rejects negative measures on field.
func ValidateAreaNonNegative(field string, value float64) error {
	if value < 0 {
		return domainagg.Invalid(domainagg.KindRuralProperty, field, field+" cannot be negative")
	}
	return nil
}
