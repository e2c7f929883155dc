package reflow

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// columns returns the width of s in fixed-width columns.
func columns(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// breakOpportunities returns the set of byte offsets of line at which UAX#14
// allows a line break.
func breakOpportunities(line string) map[int]bool {
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(line)))
	breaks := make(map[int]bool)
	pos := 0
	for segmenter.Next() {
		pos += len(segmenter.Bytes())
		breaks[pos] = true
	}
	return breaks
}

// isBlank is true for gaps consisting of ASCII spaces and tabs only, which
// are always break opportunities.
func isBlank(gap string) bool {
	return strings.Trim(gap, " \t") == ""
}

// wrapLine wraps a single line (without newlines) at width columns, first
// fit. Gaps of other white space, e.g. no-break spaces, are break
// opportunities only where UAX#14 allows a break. Units of words joined by
// white space without a break opportunity are never broken.
//
// Leading white space belongs to the first unit. At a break, the complete
// white space between two units is replaced by a newline.
//
//	1. |  SpaceLeft := LineWidth
//	2. |  for each Unit in Line
//	3. |      if Width(Gap) + Width(Unit) > SpaceLeft
//	4. |           replace Gap by line break
//	5. |           SpaceLeft := LineWidth - Width(Unit)
//	6. |      else
//	7. |           SpaceLeft := SpaceLeft - (Width(Gap) + Width(Unit))
func wrapLine(line string, width int, context *uax11.Context) string {
	words := findWordSpans(line)
	if len(words) < 2 {
		return line
	}
	breaks := breakOpportunities(line)
	units := make([]span, 0, len(words))
	unit := span{pos: 0, len: words[0].end()}
	for i, w := range words[1:] {
		if breaks[w.pos] || isBlank(line[words[i].end():w.pos]) {
			units = append(units, unit)
			unit = w
			continue
		}
		unit.len = w.end() - unit.pos // glue
	}
	units = append(units, unit)
	var b strings.Builder
	b.Grow(len(line))
	first := line[units[0].pos:units[0].end()]
	b.WriteString(first)
	spaceleft := width - columns(first, context)
	for i := 1; i < len(units); i++ {
		gap := line[units[i-1].end():units[i].pos]
		word := line[units[i].pos:units[i].end()]
		gw, ww := columns(gap, context), columns(word, context)
		if gw+ww > spaceleft {
			tracer().Debugf("break before %q", word)
			b.WriteByte('\n')
			spaceleft = width - ww
		} else {
			b.WriteString(gap)
			spaceleft -= gw + ww
		}
		b.WriteString(word)
	}
	b.WriteString(line[units[len(units)-1].end():]) // trailing white space
	return b.String()
}

// wrapText wraps every line of text independently.
func wrapText(text string, width int, context *uax11.Context) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, width, context)
	}
	return strings.Join(lines, "\n")
}
