/*
Package ttext implements tagged text, a markup micro-language for runs of
visually distinct text.

Tagged text

Tagged text is plain text with embedded tags of two forms:

	<t ATTRS>TEXT</t>
	<t ATTRS text="TEXT"/>

The tag name may be 't' or 'tag', in any letter case. Tags do not nest.
ATTRS is a list of attributes describing how TEXT should be displayed:

	Hello <t fg=red b>World</t>, this is <t family="Courier New" size=12>code</t>.

Attributes fall into three groups: generic visual options (colors, relief,
border width, images, keyboard-accelerator underline, …), font facets
(family, size, weight, slant, underline, overstrike) and a case directive
(upper, lower, title, swapcase). Keys may be abbreviated by registered
aliases ('bg' for 'background', 'b' for 'bold') or by a prefix of the
canonical name ('back').

Packages

Package chunk splits tagged text into chunks, package attrs decodes and encodes
attribute lists, package alias holds the vocabulary of attribute keys, and
package reflow wraps tagged text to a line width while keeping every piece of
text within its tag. Package render displays tagged text on consoles or as HTML,
package inline converts inline HTML to tagged text.

This package offers the entry points used by widget toolkits.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ttext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TextError is an error type for the ttext module
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")
