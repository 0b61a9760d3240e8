// Package profile normalizes the free-form financial profile handed to the
// advisory core. The profile arrives as a key-value record owned by the web
// layer; every field is optional and absence always resolves to the same
// documented default, so every prompt builder and fallback generator sees an
// identical view of the user.
package profile

import (
	"strconv"
	"strings"
)

// Profile is the raw financial profile as received from the caller.
// Recognized keys: income, age, investment_amount, dependents, occupation,
// city, state, monthly_savings, emergency_fund, retirement_savings,
// marital_status, education.
type Profile map[string]interface{}

// DefaultAge is used when the profile carries no usable age.
const DefaultAge = 30

// Number returns a numeric field, accepting the value types a JSON-decoding
// web handler produces (float64, int, numeric string). Missing or unusable
// values resolve to def; Number never fails.
func Number(p Profile, key string, def float64) float64 {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return f
		}
	}
	return def
}

// Int is Number truncated to an integer.
func Int(p Profile, key string, def int) int {
	return int(Number(p, key, float64(def)))
}

// Text returns a string field, or def when the key is missing or not a string.
func Text(p Profile, key string, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return def
}

// Age applies the profile-wide age default.
func Age(p Profile) int {
	a := Int(p, "age", DefaultAge)
	if a <= 0 {
		return DefaultAge
	}
	return a
}

// Income returns the annual income, never negative.
func Income(p Profile) float64 {
	n := Number(p, "income", 0)
	if n < 0 {
		return 0
	}
	return n
}

// FormatINR renders an amount the way the prompts and fallback templates show
// money: integer rupees with comma thousands separators (no currency sign).
func FormatINR(amount float64) string {
	n := int64(amount)
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}
