package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// VALUE CLASSIFIER — Is this cell a number?
// ============================================================================
// A value counts as numeric when EITHER conversion accepts it:
//   strict  — the whole trimmed string is a float literal ("3.14", "-7")
//   prefix  — the string starts with a float literal ("12abc", "5%")
// The OR keeps parity with datasets in the wild where unit suffixes ride
// along on otherwise numeric columns.
// ============================================================================

// IsNumeric reports whether a raw cell value behaves as a number.
// Empty and whitespace-only values are not numeric.
func IsNumeric(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if _, ok := parseStrict(v); ok {
		return true
	}
	_, ok := parsePrefix(v)
	return ok
}

// ToNumber coerces a raw cell value to a float64 for summation.
// Strict conversion wins; otherwise the leading numeric prefix; otherwise 0.
// Non-numeric values never error — they contribute zero.
func ToNumber(value string) float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	if f, ok := parseStrict(v); ok {
		return f
	}
	if f, ok := parsePrefix(v); ok {
		return f
	}
	return 0
}

func parseStrict(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parsePrefix scans the longest leading float literal: optional sign,
// digits, optional fraction, optional exponent. At least one digit must
// appear before any trailing garbage.
func parsePrefix(v string) (float64, bool) {
	i := 0
	n := len(v)

	if i < n && (v[i] == '+' || v[i] == '-') {
		i++
	}

	digits := 0
	for i < n && v[i] >= '0' && v[i] <= '9' {
		i++
		digits++
	}
	if i < n && v[i] == '.' {
		i++
		for i < n && v[i] >= '0' && v[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	// Exponent is only part of the prefix when complete ("1e5", not "1e").
	if i < n && (v[i] == 'e' || v[i] == 'E') {
		j := i + 1
		if j < n && (v[j] == '+' || v[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && v[j] >= '0' && v[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	return parseStrict(v[:i])
}
