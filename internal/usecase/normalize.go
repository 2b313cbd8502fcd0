package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance
var disallowedCharsRegex = regexp.MustCompile(`[^\w\s-]`)

// NormalizeIngredient canonicalizes a raw ingredient name into the key used
// for all comparisons: lowercase, stripped of everything but word
// characters, spaces and hyphens, whitespace collapsed, and standalone "s"
// tokens dropped (crude plural strip, e.g. "tomato' s" -> "tomato").
// Idempotent; empty input yields an empty key.
func NormalizeIngredient(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = disallowedCharsRegex.ReplaceAllString(key, "")

	fields := strings.Fields(key)
	kept := fields[:0]
	for _, f := range fields {
		if f == "s" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// NormalizeQuery normalizes every raw query ingredient, preserving order.
// Malformed entries normalize to "" and are kept so the caller can decide
// whether they count toward anything (they never match).
func NormalizeQuery(ingredients []string) []string {
	keys := make([]string, len(ingredients))
	for i, ing := range ingredients {
		keys[i] = NormalizeIngredient(ing)
	}
	return keys
}
