package attrs

import "strings"

// quotes in order of preference
var quotes = [...]string{`"`, `'`, `"""`, `'''`}

// Quote encloses a value containing white space in quotes. It selects the
// first of ", ', """ and ''' which does not occur inside the value, so no
// escaping is ever needed. Values which are already enclosed in a pair of
// matching quotes are returned unchanged, as are values without white space.
func Quote(s string) string {
	if !strings.Contains(s, " ") && len(strings.Fields(s)) <= 1 {
		return s
	}
	start, end := s[0], s[len(s)-1]
	if start == end && (start == '"' || start == '\'') && len(s) > 1 {
		return s
	}
	for _, q := range quotes {
		if !strings.Contains(s, q) {
			return q + s + q
		}
	}
	tracer().Infof("cannot quote attribute value %q", s)
	return s
}

// Unquote removes enclosing quotes from a value. A balanced triple quote on
// both ends takes precedence over a single quote character.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return s
	}
	if len(s) >= 6 {
		triple := strings.Repeat(string(q), 3)
		if strings.HasPrefix(s, triple) && strings.HasSuffix(s, triple) {
			return s[3 : len(s)-3]
		}
	}
	return s[1 : len(s)-1]
}
