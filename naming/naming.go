// Package naming formats Go struct field names into runner argument names.
package naming

import (
	"strings"
	"unicode"
)

// Snake converts a field name to snake_case.
// Examples:
//   - "ExpectedBool" -> "expected_bool"
//   - "OrderID" -> "order_id"
//   - "getHTTPResponse" -> "get_http_response"
func Snake(s string) string {
	return strings.Join(Tokens(s), "_")
}

// LowerCamel converts a field name to lowerCamelCase.
func LowerCamel(s string) string {
	tokens := Tokens(s)
	if len(tokens) == 0 {
		return ""
	}

	var result strings.Builder

	result.WriteString(tokens[0])

	for _, t := range tokens[1:] {
		result.WriteString(strings.ToUpper(t[:1]) + t[1:])
	}

	return result.String()
}

// Tokens splits an identifier into normalized lowercase tokens.
func Tokens(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a field name into words at case transitions
// and separators, keeping acronym runs ("XMLParser") together.
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && breaksWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator returns true for the separators a field name may carry.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// breaksWord reports whether a new word starts at position i.
// Two boundaries count: a lower-to-upper transition, and the last
// capital of an acronym run when a lowercase rune follows it.
func breaksWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(prev) && nextIsLower
}
