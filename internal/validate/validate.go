package validate

import (
	"strconv"
	"strings"
)

// ProductName trims and bounds a product name for catalog operations.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Price parses a non-negative decimal amount.
func Price(s string) (float64, bool) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || p < 0 {
		return 0, false
	}
	return p, true
}

// Qty clamps the quantity to the accepted 1..100 window.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return n
}

// Discount clamps the discount percentage to 0..100.
func Discount(s string) int {
	return clampPercent(s, 100)
}

// GST clamps the GST percentage to 0..50.
func GST(s string) int {
	return clampPercent(s, 50)
}

func clampPercent(s string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Query bounds a bill search query. Content is free text; the LIKE
// parameters are bound, so no characters are rejected.
func Query(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	// Truncate by runes, not bytes, so a multi-byte name is never cut
	// mid-character into invalid UTF-8.
	if r := []rune(s); len(r) > 50 {
		s = string(r[:50])
	}
	return s, true
}
