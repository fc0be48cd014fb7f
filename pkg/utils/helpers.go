package utils

import (
	"strconv"
	"strings"
)

// ParseValue coerces a raw CSV cell into a typed value: int, then float,
// then bool, falling back to the trimmed string.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)

	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
