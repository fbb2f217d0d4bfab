// Package naming provides word splitting and first-rune case helpers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsSeparator reports whether r delimits words regardless of letter case.
func IsSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// Fields splits s on runs of separators and drops empty fragments.
// Example: "hello--world  again" -> ["hello", "world", "again"]
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSeparator)
}

// Words splits s into word fragments, keeping each fragment's original case.
// Boundaries are separators, an upper-case letter following a non-upper-case
// rune, and the last letter of an upper-case run that is followed by a
// lower-case letter.
// Example: "helloWorld" -> ["hello", "World"]
// Example: "HTTPServer_v2" -> ["HTTP", "Server", "v2"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	var words []string
	start := -1

	for i, r := range runes {
		if IsSeparator(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if unicode.IsUpper(r) && upperBoundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}

	return words
}

// upperBoundary reports whether the upper-case rune at i starts a new word.
// runes[i-1] is known to belong to the current word.
func upperBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i-1]) {
		return true
	}
	// Inside an acronym: only break before its last letter when a
	// lower-case letter follows ("HTTPServer" -> "HTTP", "Server").
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// UpperFirst title-cases the first rune of s. For most letters title case
// is upper case; digraphs such as "ǆ" become "ǅ".
// Example: "hello" -> "Hello"
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToTitle)
}

// LowerFirst lower-cases the first rune of s.
// Example: "HelloWorld" -> "helloWorld"
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// Capitalize title-cases the first rune of s and lower-cases the rest with
// Unicode full case mapping.
// Example: "hELLO" -> "Hello"
// Example: "ǆEMAL" -> "ǅemal"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	mapped := fn(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}
