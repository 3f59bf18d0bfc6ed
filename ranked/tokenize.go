package ranked

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var commaStripper = strings.NewReplacer(",", "")

// pluralSuffixes are tried longest first so "dishes" resolves against "dish".
var pluralSuffixes = []string{"es", "s", ""}

// normalizeText lowercases text and drops commas.
func normalizeText(text string) string {
	return commaStripper.Replace(strings.ToLower(text))
}

// tokenize splits normalized text on whitespace. Empty words never appear in the result.
func tokenize(text string) []string {
	return strings.Fields(normalizeText(text))
}

// hasPrefixToken reports whether any token starts with word.
func hasPrefixToken(tokens []string, word string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, word) {
			return true
		}
	}
	return false
}

// hasWordToken reports whether any token is word, optionally followed by a
// plural "s" or "es", and then ends or reaches a non-word rune.
func hasWordToken(tokens []string, word string) bool {
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, word) {
			continue
		}
		rest := tok[len(word):]
		for _, suffix := range pluralSuffixes {
			if strings.HasPrefix(rest, suffix) && atWordBoundary(rest[len(suffix):]) {
				return true
			}
		}
	}
	return false
}

func atWordBoundary(rest string) bool {
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}
