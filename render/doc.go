/*
Package render displays tagged text.

Rendering decodes the attributes of every chunk and hands runs of uniformly
styled text to a Format, which translates attributes to the capabilities of
an output device: ANSI escape sequences for consoles (ConsoleFixedWidth) or
styled spans for HTML. Text is wrapped to the line width of a reflow.Config
before rendering.

A chunk whose attributes cannot be decoded is rendered as its raw text,
without any styling; it does not stop rendering of the other chunks.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttext'
func tracer() tracing.Trace {
	return tracing.Select("ttext")
}
