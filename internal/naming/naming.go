// Package naming converts schema names into Go identifiers, hint paths and
// file names.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pascal turns a JSON name into an exported Go identifier: "$schema" ->
// "Schema", "foo_bar" -> "FooBar", "fooBar" -> "FooBar". Only the first
// rune of each word changes case.
func Pascal(s string) string {
	upper := cases.Upper(language.Und)
	var b strings.Builder
	for _, w := range words(s) {
		r := []rune(w)
		b.WriteString(upper.String(string(r[0])))
		b.WriteString(string(r[1:]))
	}
	out := b.String()
	if out == "" {
		return "X"
	}
	if r := []rune(out)[0]; unicode.IsDigit(r) {
		out = "X" + out
	}
	return out
}

// LowerCamel lower-cases the first letter of a type name. Type-level hints
// are keyed by this form ("MyType" -> "myType").
func LowerCamel(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return cases.Lower(language.Und).String(string(r[0])) + string(r[1:])
}

// Snake renders an identifier as a lower snake_case file stem:
// "SampleNodeKind" -> "sample_node_kind", "HTTPServer" -> "http_server".
func Snake(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i, c := range r {
		if unicode.IsUpper(c) && i > 0 {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}

// words splits on every rune that cannot appear in a Go identifier.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
}
