// Package parse provides fixed-column field extraction and sexagesimal
// angle conversion shared by the catalog source parsers.
//
// All extractors follow the pipeline's absorption policy for parse-level
// anomalies: a missing, truncated, or malformed field yields the zero
// value and processing continues. Nothing here returns an error.
package parse

import (
	"strconv"
	"strings"
)

// Field returns the byte range [start,end) of line with surrounding spaces
// trimmed. Ranges that fall past the end of a short line are clipped, so
// truncated records read as empty fields rather than panicking.
func Field(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// Int parses the field at [start,end) as a base-10 integer, returning 0
// for empty or malformed fields.
func Int(line string, start, end int) int {
	s := Field(line, start, end)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Float parses the field at [start,end) as a float, returning 0 for empty
// or malformed fields. Leading '+' signs are accepted.
func Float(line string, start, end int) float64 {
	return FloatOr(line, start, end, 0)
}

// FloatOr parses the field at [start,end) as a float, returning fallback
// for empty or malformed fields. Used for magnitudes, where absence means
// the unknown-magnitude sentinel rather than zero.
func FloatOr(line string, start, end int, fallback float64) float64 {
	s := strings.TrimPrefix(Field(line, start, end), "+")
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}
