package pantry

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a raw item name into a comparable token.
//
// The name is NFKC-folded and lowercased, every rune that is not a letter,
// digit, underscore or whitespace is dropped, and the remaining words are
// joined with a single underscore. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	// Casers carry state and must not be shared between goroutines.
	lowered := cases.Lower(language.Und).String(norm.NFKC.String(raw))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), "_")
}

// Display renders a canonical token for people: underscores become spaces
func Display(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}

// normalizeAll maps Normalize over a list of raw names
func normalizeAll(names []string) []string {
	tokens := make([]string, len(names))
	for i, name := range names {
		tokens[i] = Normalize(name)
	}
	return tokens
}

// containedIn reports whether needle is a substring of any of the tokens.
// Empty tokens never contain anything.
func containedIn(needle string, tokens []string) bool {
	for _, token := range tokens {
		if token != "" && strings.Contains(token, needle) {
			return true
		}
	}
	return false
}
