package options

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// VariableName converts s to its camel-case variable form. Words are split at
// non-alphanumeric characters and at case and digit boundaries, so
// "generate-to-string", "Generate_ToString" and "GenerateToString" all become
// "generateToString". Leading acronyms are kept ("XMLName" stays "XMLName").
func VariableName(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return decapitalize(b.String())
}

// canonicalKey is the uniqueness key of an option name within a registry.
func canonicalKey(name string) string {
	return strings.ToLower(VariableName(name))
}

func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
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
		if wordBoundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

// wordBoundary reports whether a new word starts at runes[i].
func wordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		// end of an acronym: "XMLParser" -> "XML", "Parser"
		return true
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	}
	return false
}

// decapitalize lower-cases the first letter unless the first two letters are
// both upper case.
func decapitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
