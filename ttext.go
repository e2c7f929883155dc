package ttext

import (
	"github.com/npillmayer/ttext/attrs"
	"github.com/npillmayer/ttext/chunk"
	"github.com/npillmayer/ttext/reflow"
)

// Parse splits tagged text into chunks, in document order.
func Parse(text string) ([]chunk.Chunk, error) {
	chunks, err := chunk.Parse(text)
	if err != nil {
		T().Errorf("ttext: cannot parse %q: %v", text, err)
	}
	return chunks, err
}

// DecodeAttrs decodes the attribute list of a chunk into generic options,
// font facets and a case directive.
func DecodeAttrs(list string) (attrs.Options, attrs.Font, attrs.Case, error) {
	a, err := attrs.Parse(list)
	if err != nil {
		return nil, attrs.Font{}, attrs.CaseNone, err
	}
	return a.Options, a.Font, a.Case, nil
}

// EncodeAttrs encodes options, font facets and a case directive as an
// attribute list. mode selects the spelling of keys: "" keeps option keys as
// given, "alias" uses short aliases and "option" canonical names.
func EncodeAttrs(options attrs.Options, font attrs.Font, c attrs.Case, mode string) (string, error) {
	return attrs.Encode(options, font, c, &attrs.Config{Mode: attrs.ParseKeyMode(mode)})
}

// Reflow wraps tagged text at width columns. Width 0 leaves text unchanged.
func Reflow(text string, width int) (string, error) {
	return reflow.Wrap(text, width)
}

// StripTags returns the text of tagged text without any markup.
func StripTags(text string) string {
	return chunk.StripTags(text)
}

// IsTagged is true if text contains any markup.
func IsTagged(text string) bool {
	return chunk.IsTagged(text)
}
