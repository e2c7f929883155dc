/*
Package inline converts inline HTML to tagged text.

Only inline elements changing the appearance of text are recognized:

	<b>, <strong>      bold
	<i>, <em>          italic
	<u>, <ins>         underline
	<s>, <strike>, <del>  overstrike
	<font color=…>     foreground color

All other elements contribute their text only. Nested elements accumulate
their styles.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttext'
func tracer() tracing.Trace {
	return tracing.Select("ttext")
}
