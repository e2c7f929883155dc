package attrs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split splits an attribute list into its elements, preserving quoted values.
// White space around '=' is dropped, so "key = value" yields "key=value".
// Bare keys are returned as single elements.
//
//	Split(`family="Courier New" size=16 bold`)
//
// yields
//
//	[]string{`family="Courier New"`, `size=16`, `bold`}
//
// A value opening a quote which is never closed results in ErrImbalancedQuotes.
func Split(s string) ([]string, error) {
	sc := scanner{src: s}
	for sc.pos < len(sc.src) {
		if err := sc.step(); err != nil {
			tracer().Errorf("split attributes %q: %v", s, err)
			return nil, err
		}
	}
	if sc.quote != "" {
		tracer().Errorf("split attributes %q: %v", s, ErrImbalancedQuotes)
		return nil, ErrImbalancedQuotes
	}
	sc.flush()
	return sc.fields, nil
}

// scanner is a forward state machine over an attribute list. quote holds the
// delimiter of the quoted span currently open, if any.
type scanner struct {
	src    string
	pos    int
	quote  string
	field  strings.Builder
	fields []string
}

func (sc *scanner) step() error {
	if sc.quote != "" { // inside a quoted value, white space is literal
		rest := sc.src[sc.pos:]
		if strings.HasPrefix(rest, sc.quote) {
			// a triple quote closes with the last three of a run of quotes
			n := len(sc.quote)
			for n > 1 && n < len(rest) && rest[n] == sc.quote[0] {
				n++
			}
			sc.field.WriteString(rest[:n])
			sc.pos += n
			sc.quote = ""
			return nil
		}
		r, n := utf8.DecodeRuneInString(sc.src[sc.pos:])
		sc.field.WriteRune(r)
		sc.pos += n
		return nil
	}
	r, n := utf8.DecodeRuneInString(sc.src[sc.pos:])
	switch {
	case unicode.IsSpace(r):
		sc.skipSpace()
		if sc.pos < len(sc.src) && sc.src[sc.pos] == '=' {
			return nil // "key =value"
		}
		if strings.HasSuffix(sc.field.String(), "=") {
			return nil // "key= value"
		}
		sc.flush()
	case r == '"' || r == '\'':
		cur := sc.field.String()
		if cur == "" || strings.HasSuffix(cur, "=") {
			sc.quote = delimiterAt(sc.src[sc.pos:])
			sc.field.WriteString(sc.quote)
			sc.pos += len(sc.quote)
			return nil
		}
		// a quote inside a word is literal, but a word must not end in one
		sc.field.WriteRune(r)
		sc.pos += n
		if sc.pos == len(sc.src) || isSpaceAt(sc.src, sc.pos) {
			return ErrImbalancedQuotes
		}
	default:
		sc.field.WriteRune(r)
		sc.pos += n
	}
	return nil
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.src) && isSpaceAt(sc.src, sc.pos) {
		_, n := utf8.DecodeRuneInString(sc.src[sc.pos:])
		sc.pos += n
	}
}

func (sc *scanner) flush() {
	if sc.field.Len() > 0 {
		sc.fields = append(sc.fields, sc.field.String())
		sc.field.Reset()
	}
}

func isSpaceAt(s string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsSpace(r)
}

// delimiterAt returns the quote delimiter starting s, preferring a triple
// quote if s starts with three equal quote characters.
func delimiterAt(s string) string {
	if len(s) >= 6 && s[1] == s[0] && s[2] == s[0] {
		triple := s[:3]
		if strings.Contains(s[3:], triple) {
			return triple
		}
	}
	return s[:1]
}
