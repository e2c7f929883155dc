package reflow

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/ttext/chunk"
	"github.com/npillmayer/uax/uax11"
)

// ErrMismatch is flagged if wrapped text cannot be mapped back onto the
// chunks of the source text.
var ErrMismatch = errors.New("reflow: wrapped text does not match source text")

// Config represents a set of configuration parameters for wrapping.
type Config struct {
	Width   int            // line width in fixed-width columns; <= 0 disables wrapping
	Context *uax11.Context // context for width measurement; nil selects uax11.LatinContext
}

// Wrap wraps tagged text at width columns. For width <= 0 the text is
// returned unchanged.
//
// The plain text of the tagged text is wrapped line by line, first fit.
// Where a line is broken, the white space between the two words is replaced
// by a newline. Each newline ends up in the chunk which contained the first
// replaced character; tags around it are kept. Chunks are serialized again
// as '<t ATTRS>TEXT</t>', chunks left without text are dropped.
func Wrap(text string, width int) (string, error) {
	return WrapWithConfig(text, &Config{Width: width})
}

// WrapWithConfig is Wrap with a configuration. config may be nil, which
// disables wrapping.
func WrapWithConfig(text string, config *Config) (string, error) {
	if config == nil || config.Width <= 0 {
		return text, nil
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	chunks, err := chunk.Parse(text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	spans := make([]span, len(chunks))
	for i, c := range chunks {
		spans[i] = span{pos: b.Len(), len: len(c.Text)}
		b.WriteString(c.Text)
	}
	plain := b.String()
	wrapped := wrapText(plain, config.Width, context)
	if wrapped == plain {
		return text, nil
	}
	breaks, err := lockstep(plain, wrapped)
	if err != nil {
		tracer().Errorf("reflow: %v", err)
		return "", err
	}
	edits := assign(breaks, spans)
	for i := len(edits) - 1; i >= 0; i-- { // back to front keeps offsets valid
		e := edits[i]
		t := chunks[e.chunk].Text
		chunks[e.chunk].Text = t[:e.offset] + e.insert + t[e.offset+e.drop:]
	}
	return chunk.Join(chunks), nil
}

// lineBreak is a newline of the wrapped text which replaces the white space
// plain[pos:pos+len] of the plain text. len is 0 for a pure insertion.
type lineBreak = span

// lockstep walks the plain text and its wrapped version in parallel and
// collects the positions where the wrapped text has a line break which the
// plain text has not.
func lockstep(plain, wrapped string) ([]lineBreak, error) {
	var breaks []lineBreak
	i, j := 0, 0
	for i < len(plain) && j < len(wrapped) {
		if plain[i] == wrapped[j] {
			i++
			j++
			continue
		}
		if wrapped[j] != '\n' {
			return nil, ErrMismatch
		}
		k := i
		for k < len(plain) {
			r, n := utf8.DecodeRuneInString(plain[k:])
			if r == '\n' || !unicode.IsSpace(r) {
				break
			}
			k += n
		}
		breaks = append(breaks, lineBreak{pos: i, len: k - i})
		tracer().Debugf("line break at %d replaces %q", i, plain[i:k])
		i, j = k, j+1
	}
	if i != len(plain) || j != len(wrapped) {
		return nil, ErrMismatch
	}
	return breaks, nil
}

// edit replaces drop bytes at offset of a chunk's text by insert.
type edit struct {
	chunk  int
	offset int
	drop   int
	insert string
}

// assign maps line breaks onto chunks. The newline goes into the chunk
// containing the first replaced byte. Replaced white space extending into
// following chunks is removed from them. Edits are returned in text order.
func assign(breaks []lineBreak, spans []span) []edit {
	var edits []edit
	c := 0
	for _, lb := range breaks {
		for c < len(spans) && spans[c].end() <= lb.pos {
			c++
		}
		if c == len(spans) {
			break
		}
		edits = append(edits, edit{
			chunk:  c,
			offset: lb.pos - spans[c].pos,
			drop:   min(lb.end(), spans[c].end()) - lb.pos,
			insert: "\n",
		})
		for k := c + 1; k < len(spans) && spans[k].pos < lb.end(); k++ {
			if to := min(lb.end(), spans[k].end()); to > spans[k].pos {
				edits = append(edits, edit{chunk: k, drop: to - spans[k].pos})
			}
		}
	}
	sort.SliceStable(edits, func(a, b int) bool {
		if edits[a].chunk != edits[b].chunk {
			return edits[a].chunk < edits[b].chunk
		}
		return edits[a].offset < edits[b].offset
	})
	return edits
}
