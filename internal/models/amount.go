package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeDecimal accepts a comma as decimal separator by rewriting it to a dot.
func NormalizeDecimal(text string) string {
	return strings.ReplaceAll(text, ",", ".")
}

// ParseAmount parses free-form amount text typed into a field. The text must
// be a plain decimal number; values outside the float64 range are rejected.
func ParseAmount(text string) (float64, bool) {
	normalized := strings.TrimSpace(NormalizeDecimal(text))
	if _, err := decimal.NewFromString(normalized); err != nil {
		return 0, false
	}

	// value via strconv: no big-number expansion of the exponent
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FormatAmount renders an amount with exactly two fractional digits, rounding
// the shortest decimal form of v half away from zero. This can differ from
// %.2f, which rounds the exact binary value: 2.675 renders as "2.68" here.
// Non-finite values render as an empty field.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
