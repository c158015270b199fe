package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCouponCode trims and uppercases a coupon code. Lookups always use
// the normalized form.
func NormalizeCouponCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// FirstNonEmpty returns the first argument with non-whitespace content.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
