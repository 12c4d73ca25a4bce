package ingest

import (
	"strconv"
	"strings"
	"unicode"
)

// Band is a filter passband designation: center and full width in nm.
type Band struct {
	Center int `json:"center"`
	Width  int `json:"width"`
}

// ParseBand extracts the passband from filter names like "ET525/50m" or
// "Semrock FF01-525/45-25". ok is false when the name carries none or the
// numbers are implausible.
func ParseBand(name string) (Band, bool) {
	left, right, found := strings.Cut(name, "/")
	if !found {
		return Band{}, false
	}
	fields := strings.Fields(left)
	if len(fields) == 0 {
		return Band{}, false
	}
	last := fields[len(fields)-1]
	center, ok := trailingNumber(last)
	if !ok {
		return Band{}, false
	}
	width, ok := leadingNumber(strings.TrimSpace(right))
	if !ok {
		return Band{}, false
	}
	if center < 200 || center > 1600 || width <= 0 || width > 900 {
		return Band{}, false
	}
	return Band{Center: center, Width: width}, true
}

func trailingNumber(s string) (int, bool) {
	end := len(s)
	start := end
	for start > 0 && unicode.IsDigit(rune(s[start-1])) {
		start--
	}
	return atoi(s[start:end])
}

func leadingNumber(s string) (int, bool) {
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	return atoi(s[:end])
}

func atoi(digits string) (int, bool) {
	if digits == "" || len(digits) > 4 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	return n, err == nil
}
