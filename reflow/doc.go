/*
Package reflow wraps tagged text to a given line width.

Wrapping operates on the plain text of all chunks of a tagged text, as if the
tags were absent. Line breaks are inserted at white space between words,
replacing the white space, and are then mapped back onto the chunks, so every
piece of text keeps the attributes it had before.

Line break opportunities follow UAX#14 (package github.com/npillmayer/uax/uax14),
restricted to white space: text is never broken inside a word, and never at
non-breaking spaces. Widths of words are measured in fixed-width columns
according to UAX#11 (package github.com/npillmayer/uax/uax11), so wide East Asian
characters count as two columns.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package reflow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttext'
func tracer() tracing.Trace {
	return tracing.Select("ttext")
}
