package agro

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Area is a surface measure in hectares. It decodes from JSON numbers and
// from numeric strings ("12,5" and "12.5" alike); anything else decodes to 0.
type Area float64

func (a *Area) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Area(ParseArea(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Area(f)
	return nil
}

func (a Area) Float64() float64 { return float64(a) }

// areaScale matches the two decimal places of the numeric(10,2) area columns.
const areaScale = 100

// Hundredths rounds hectares to the stored scale, as a count of 0.01 ha.
func Hundredths(f float64) int64 { return int64(math.Round(f * areaScale)) }

// Quantize rounds hectares to the precision the store keeps, so the value
// checked is the value persisted.
func Quantize(f float64) float64 { return float64(Hundredths(f)) / areaScale }

// ParseArea coerces a numeric string to a float, treating non-numeric input as 0.
func ParseArea(raw string) float64 {
	raw = strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
