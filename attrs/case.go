package attrs

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case is a text case directive.
type Case string

// Case directives. 'capitalize' is accepted on input and decodes to CaseUpper.
const (
	CaseNone     Case = ""
	CaseUpper    Case = "upper"
	CaseLower    Case = "lower"
	CaseTitle    Case = "title"
	CaseSwapCase Case = "swapcase"
)

// caseWords are tried in order when resolving a case prefix.
var caseWords = [...]string{"upper", "capitalize", "lower", "title", "swapcase"}

// CaseFromPrefix resolves a (possibly abbreviated) case name. The first of
// upper, capitalize, lower, title and swapcase starting with the lowercased
// word wins, thus an empty word yields CaseUpper. A word matching nothing
// yields CaseNone.
func CaseFromPrefix(word string) Case {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, c := range caseWords {
		if strings.HasPrefix(c, word) {
			if c == "capitalize" {
				return CaseUpper
			}
			return Case(c)
		}
	}
	return CaseNone
}

// Apply transforms s according to the case directive.
// Casers are not safe for concurrent use, so a new one is created per call.
func (c Case) Apply(s string) string {
	switch c {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseTitle:
		return cases.Title(language.Und).String(s)
	case CaseSwapCase:
		return strings.Map(swapRune, s)
	}
	return s
}

func swapRune(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	}
	return r
}
