/*
Package attrs decodes and encodes the attribute lists of tagged text.

An attribute list is the part of a tag between the tag name and the closing
bracket, e.g.

	<t bg=white fg=blue family="Courier New" size=16 bold>text</t>

Decoding splits such a list into three structures: generic visual options
(colors, relief, border width, images, …), the six font facets (family, size,
weight, slant, underline, overstrike) and a text case directive. Keys may be
given by their canonical name, by their alias (see package alias), or by an
unregistered prefix of a canonical name.

Encoding is the reverse operation. It serializes options, font facets and a
case directive into an attribute list, with a choice of key spelling
(KeyModePlain, KeyModeAlias, KeyModeOption).

Font underline and overstrike collide with the widget option 'underline', which
is the index of the character to mark as keyboard accelerator. Whenever font
facets and options share a single map (see Attrs.Merged), the font facets are
therefore spelled 'funderline' and 'foverstrike'.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package attrs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttext'
func tracer() tracing.Trace {
	return tracing.Select("ttext")
}
