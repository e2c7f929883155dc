/*
Package chunk splits tagged text into chunks.

Tagged text is plain text interspersed with tags of two forms:

	<t ATTRS>TEXT</t>
	<t ATTRS text="TEXT"/>

The tag name is 't' or 'tag', in any letter case. Tags do not nest. Each
tag region, and each run of text between tag regions, becomes a Chunk.
Attribute lists are left encoded; package attrs decodes them.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package chunk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttext'
func tracer() tracing.Trace {
	return tracing.Select("ttext")
}
