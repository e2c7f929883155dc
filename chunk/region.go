package chunk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitTaggedText splits text into substrings, each of which is either a
// tag region or a run of plain text between tag regions. A tag region
// starts at '<t' or '<tag' followed by white space, '>' or '/', and ends
// at the first '/>', '/t>' or '/tag>'. A region which is never closed is
// plain text.
//
// Concatenating the substrings reproduces text. Empty substrings are not
// returned.
func SplitTaggedText(text string) []string {
	var parts []string
	plain := 0 // start of the current plain run
	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], '<')
		if j < 0 {
			break
		}
		i += j
		name := tagNameAt(text, i+1)
		if name == 0 {
			i++
			continue
		}
		end := regionEnd(text, i+1+name)
		if end < 0 {
			break // unterminated, the rest is plain text
		}
		if i > plain {
			parts = append(parts, text[plain:i])
		}
		parts = append(parts, text[i:end])
		tracer().Debugf("tag region at %d…%d", i, end)
		i, plain = end, end
	}
	if plain < len(text) {
		parts = append(parts, text[plain:])
	}
	return parts
}

// tagNameAt returns the length of a tag name ('t' or 'tag') starting at pos,
// provided it is followed by white space, '>' or '/'. It returns 0 if there
// is no tag name at pos.
func tagNameAt(s string, pos int) int {
	for _, name := range [...]string{"tag", "t"} {
		end := pos + len(name)
		if end >= len(s) || !strings.EqualFold(s[pos:end], name) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(s[end:]); r == '>' || r == '/' || unicode.IsSpace(r) {
			return len(name)
		}
	}
	return 0
}

// regionEnd finds the end of a tag region, searching from pos. It returns
// the offset after the closing '>', or -1.
func regionEnd(s string, pos int) int {
	for i := pos; i < len(s); i++ {
		if s[i] != '/' {
			continue
		}
		rest := s[i+1:]
		switch {
		case strings.HasPrefix(rest, ">"):
			return i + 2
		case hasPrefixFold(rest, "t>"):
			return i + 3
		case hasPrefixFold(rest, "tag>"):
			return i + 5
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
