package strcase

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/strtools/internal/naming"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultDelimiter is the word delimiter used by Snake.
const DefaultDelimiter = "_"

// Kebab converts s to kebab-case.
// Example: "Hello World" -> "hello-world"
func Kebab(s string) string {
	return Snake(s, "-")
}

// Snake converts s to lower-case words joined by delimiter. An empty
// delimiter selects DefaultDelimiter.
// Example: "Hello World" -> "hello_world"
// Example: "userID", "." -> "user.id"
func Snake(s string, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	words := naming.Words(s)
	for i, w := range words {
		words[i] = Lower(w)
	}
	return strings.Join(words, delimiter)
}

// Camel converts s to camelCase.
// Example: "hello world" -> "helloWorld"
func Camel(s string) string {
	return naming.LowerFirst(Studly(s))
}

// Studly converts s to StudlyCaps (PascalCase). Whitespace, '-' and '_'
// separate words; each word's first letter is upper-cased and the rest is
// left as-is.
// Example: "hello world" -> "HelloWorld"
// Example: "user_profileId" -> "UserProfileId"
func Studly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range naming.Fields(s) {
		b.WriteString(naming.UpperFirst(w))
	}
	return b.String()
}

// Pascal is an alias of Studly.
func Pascal(s string) string {
	return Studly(s)
}

// Lower converts s to lower case using Unicode full case mapping.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper converts s to upper case using Unicode full case mapping.
// Example: "straße" -> "STRASSE"
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Title upper-cases the first letter of every word and lower-cases the rest.
// Spacing is left untouched.
// Example: "hello wORLD" -> "Hello World"
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Headline converts s to space-separated capitalized words. Runs of
// whitespace, '-' and '_' collapse to a single space. Input without any
// separator is split on case boundaries instead. Headline(Headline(s)) is
// always Headline(s).
// Example: "hello_world" -> "Hello World"
// Example: "helloWorld" -> "Hello World"
// Example: "HTTPServer" -> "Http Server"
func Headline(s string) string {
	parts := naming.Fields(s)
	if len(parts) == 1 {
		return strings.Join(capitalizeWords(parts[0]), " ")
	}
	for i, p := range parts {
		parts[i] = naming.Capitalize(p)
	}
	return strings.Join(parts, " ")
}

// capitalizeWords splits s on case boundaries and capitalizes each word.
// A capitalized word that still has a case boundary, such as "Aϒb" where
// "ϒ" has no lower-case form, is split again until every word is stable.
func capitalizeWords(s string) []string {
	var out []string
	for _, w := range naming.Words(s) {
		c := naming.Capitalize(w)
		if len(naming.Words(c)) > 1 {
			out = append(out, capitalizeWords(c)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// Slug converts s to a URL-friendly slug: accents are stripped, letters and
// digits are kept, and every other run of characters becomes a single '-'.
// Example: "Héllo, Wörld!" -> "hello-world"
func Slug(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		words[i] = Lower(w)
	}
	return strings.Join(words, "-")
}

// Sentence converts s to lower-case words separated by single spaces with
// the first letter upper-cased.
// Example: "hello_world" -> "Hello world"
func Sentence(s string) string {
	words := naming.Words(s)
	for i, w := range words {
		words[i] = Lower(w)
	}
	return naming.UpperFirst(strings.Join(words, " "))
}

// Length returns the number of characters (runes) in s as a decimal string.
// Example: "hello world" -> "11"
func Length(s string) string {
	return strconv.Itoa(utf8.RuneCountInString(s))
}

// WordCount returns the number of whitespace-separated words in s as a
// decimal string.
// Example: "hello world" -> "2"
func WordCount(s string) string {
	return strconv.Itoa(len(strings.Fields(s)))
}
