// Package params - Lenient numeric coercion
package params

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal coerces a raw field value to a number. It accepts either a
// comma or a dot as the decimal separator and trims surrounding whitespace.
// On empty input, unparsable input, or a non-finite value it returns fallback.
// This is the single coercion path for every field that crosses the caller
// boundary; the models never see raw strings.
func ParseDecimal(raw string, fallback float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// parseRequired coerces a required field, reporting whether the raw value
// was present and numeric. Unlike ParseDecimal it distinguishes a genuine
// parse from a fallback, so validation can name the offending field.
func parseRequired(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
