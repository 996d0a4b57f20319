package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeCity canonicalizes one free-text city name: trims surrounding
// whitespace and uppercases the first rune only. Stored vendor rows use
// the same form, so query-side filters must match it exactly or the
// lookup silently misses.
func NormalizeCity(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(r)) + strings.ToLower(trimmed[size:])
}

// NormalizeCities cleans a destination list, dropping entries that are
// blank after trimming. Returns ErrNoDestination when nothing survives:
// with no destination there is no meaningful context to build and the
// caller must abort the whole flow.
func NormalizeCities(raw ...string) ([]string, error) {
	var cities []string
	for _, city := range raw {
		if c := NormalizeCity(city); c != "" {
			cities = append(cities, c)
		}
	}
	if len(cities) == 0 {
		return nil, ErrNoDestination
	}
	return cities, nil
}
