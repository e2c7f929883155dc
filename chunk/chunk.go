package chunk

import (
	"strings"
	"unicode"

	"github.com/npillmayer/ttext/attrs"
)

// Chunk is a unit of tagged text: a tag name, an encoded attribute list and
// the literal text. Tag and Attrs are empty for plain text.
//
// Chunks are values; operations on tagged text produce new chunks.
type Chunk struct {
	Tag   string
	Attrs string
	Text  string
}

// IsVoid is true for the zero Chunk, which Split returns for empty input.
func (c Chunk) IsVoid() bool {
	return c == Chunk{}
}

// Tagged serializes c. Chunks with attributes are written as
// '<t ATTRS>TEXT</t>', all others as their text.
func (c Chunk) Tagged() string {
	if c.Attrs == "" {
		return c.Text
	}
	return "<t " + c.Attrs + ">" + c.Text + "</t>"
}

// Decode decodes the attribute list of c.
func (c Chunk) Decode(cfg *attrs.Config) (attrs.Attrs, error) {
	var a attrs.Attrs
	err := a.Decode(c.Attrs, cfg)
	return a, err
}

// Split decomposes a substring produced by SplitTaggedText into a chunk.
//
// A paired tag '<t ATTRS>TEXT</t>' yields Chunk{"t", "ATTRS", "TEXT"}, with
// TEXT taken literally. A self-closing tag '<t ATTRS/>' is first rewritten
// to the paired form: its attributes are decoded, attribute 'text' becomes
// the text, and the remaining attributes are encoded again. Both forms thus
// yield equivalent chunks.
//
// Anything else is plain text. For an empty string, Split returns the void
// chunk.
func Split(raw string) (Chunk, error) {
	if raw == "" {
		return Chunk{}, nil
	}
	if hasPrefixFold(raw, "<t") && strings.HasSuffix(raw, "/>") {
		paired, err := pair(raw)
		if err != nil {
			tracer().Errorf("self-closing tag %q: %v", raw, err)
			return Chunk{}, err
		}
		raw = paired
	}
	if c, ok := splitPaired(raw); ok {
		return c, nil
	}
	return Chunk{Text: raw}, nil
}

// pair rewrites a self-closing tag to the paired form.
func pair(raw string) (string, error) {
	inner := raw[1 : len(raw)-2]
	name := tagNameAt(raw, 1)
	if name == 0 {
		name = strings.IndexFunc(inner, unicode.IsSpace)
		if name < 0 {
			name = len(inner)
		}
	}
	tag, list := inner[:name], strings.TrimSpace(inner[name:])
	a, err := attrs.Parse(list)
	if err != nil {
		return "", err
	}
	text := ""
	if v, ok := a.Options["text"]; ok {
		if s, isString := v.(string); isString {
			text = s
		}
		delete(a.Options, "text")
	}
	list, err = a.Encode(nil)
	if err != nil {
		return "", err
	}
	paired := "<" + tag + " " + list + ">" + text + "</" + tag + ">"
	tracer().Debugf("self-closing tag normalized to %q", paired)
	return paired, nil
}

// splitPaired matches '<t ATTRS>TEXT</t>' or '<tag ATTRS>TEXT</tag>'.
func splitPaired(raw string) (Chunk, bool) {
	if len(raw) < 2 || raw[0] != '<' {
		return Chunk{}, false
	}
	name := tagNameAt(raw, 1)
	if name == 0 {
		return Chunk{}, false
	}
	tag := raw[1 : 1+name]
	open := strings.IndexByte(raw, '>')
	if open < 0 || raw[open-1] == '/' {
		return Chunk{}, false
	}
	body := raw[open+1:]
	var closing int
	switch {
	case hasSuffixFold(body, "</t>"):
		closing = len(body) - len("</t>")
	case hasSuffixFold(body, "</tag>"):
		closing = len(body) - len("</tag>")
	default:
		return Chunk{}, false
	}
	return Chunk{
		Tag:   tag,
		Attrs: strings.TrimSpace(raw[1+name : open]),
		Text:  body[:closing],
	}, true
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// Parse splits tagged text into chunks. It stops at the first chunk with
// an invalid self-closing tag.
func Parse(text string) ([]Chunk, error) {
	parts := SplitTaggedText(text)
	chunks := make([]Chunk, 0, len(parts))
	for _, part := range parts {
		c, err := Split(part)
		if err != nil {
			return chunks, err
		}
		if !c.IsVoid() {
			chunks = append(chunks, c)
		}
	}
	return chunks, nil
}

// StripTags returns the text of tagged text without any markup. A
// self-closing tag with an invalid attribute list contributes its raw
// markup, as a renderer would show it.
func StripTags(text string) string {
	var b strings.Builder
	for _, part := range SplitTaggedText(text) {
		c, err := Split(part)
		if err != nil {
			b.WriteString(part)
			continue
		}
		b.WriteString(c.Text)
	}
	return b.String()
}

// IsTagged is true if text contains any markup.
func IsTagged(text string) bool {
	return len(text) > len(StripTags(text))
}

// Join serializes chunks with Chunk.Tagged, dropping chunks without text.
func Join(chunks []Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		if c.Text == "" {
			continue
		}
		b.WriteString(c.Tagged())
	}
	return b.String()
}
