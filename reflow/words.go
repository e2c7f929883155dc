package reflow

import (
	"unicode"
	"unicode/utf8"
)

// span is a byte range [pos, pos+len) of a line.
type span struct {
	pos int
	len int
}

func (s span) end() int {
	return s.pos + s.len
}

// findWordSpans returns the spans of maximal runs of non-space characters.
func findWordSpans(line string) []span {
	spans := make([]span, 0, 8)
	for pos := 0; pos < len(line); {
		r, width := utf8.DecodeRuneInString(line[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(line) {
			r, width = utf8.DecodeRuneInString(line[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, span{pos: start, len: pos - start})
	}
	return spans
}
