/*
Package alias holds the closed vocabulary of tagged-text attribute keys.

Every attribute a tag may carry has a canonical (long) name and a short alias
of one to three letters. 'bd', 'bg' and 'fg' are the well-known aliases of
widget toolkits; this package assigns an alias to every option. As a rule of
thumb, simple words are abbreviated to their first three letters ('anc' for
'anchor', 'cur' for 'cursor') unless a common abbreviation exists ('cmd' for
'command', 'cpd' for 'compound', 'wt' for 'weight'), while compound words use
the first letter of each word ('abg' for 'activebackground', 'rd' for
'repeatdelay').

The vocabulary extends the usual widget options with font facets

	family  size  weight  slant  funderline  foverstrike

and with text case directives

	case  upper  capitalize  lower  title  swapcase

The table is static. It is built once during package initialization and is
safe for concurrent reads afterwards.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package alias

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ttext'
func tracer() tracing.Trace {
	return tracing.Select("ttext")
}
