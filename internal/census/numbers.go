package census

import (
	"math"
	"strconv"
	"strings"
)

// ParseCount parses an integer cell, tolerating thousands separators and
// surrounding whitespace. Unparsable cells count as zero.
func ParseCount(s string) int {
	s = cleanNumber(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(math.Round(f))
	}
	return 0
}

// ParseDecimal parses a numeric cell, tolerating thousands separators.
// Unparsable cells count as zero.
func ParseDecimal(s string) float64 {
	s = cleanNumber(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, " ", "")
}
