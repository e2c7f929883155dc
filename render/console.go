package render

/*
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
import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ttext/attrs"
)

// ConsoleFixedWidth is a type for outputting tagged text to a console with
// a fixed width font.
//
// Consoles know just a handful of colors. Color names of attributes 'background'
// and 'foreground' are looked up in a palette, which maps names to foreground
// colors; background colors are derived from them. Font weight, slant,
// underline and overstrike are displayed with the corresponding ANSI
// attributes. Family and size have no effect.
type ConsoleFixedWidth struct {
	palette map[string]color.Attribute
}

// NewConsoleFixedWidthFormat creates a new format. It is to be used for consoles
// with a fixed width font.
//
// palette is a map from color names to foreground colors, used for display. It may
// contain just a subset of the colors used in the texts which will be handled by
// this format. If it is nil, a default palette of the basic ANSI colors is used.
func NewConsoleFixedWidthFormat(palette map[string]color.Attribute) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{palette: palette}
	if palette == nil {
		fw.palette = makeDefaultPalette()
	}
	return fw
}

func makeDefaultPalette() map[string]color.Attribute {
	palette := map[string]color.Attribute{
		"black":   color.FgBlack,
		"red":     color.FgRed,
		"green":   color.FgGreen,
		"yellow":  color.FgYellow,
		"blue":    color.FgBlue,
		"magenta": color.FgMagenta,
		"cyan":    color.FgCyan,
		"white":   color.FgWhite,
		"gray":    color.FgHiBlack,
		"grey":    color.FgHiBlack,
		"navy":    color.FgBlue,
		"orange":  color.FgHiYellow,
		"purple":  color.FgMagenta,
	}
	return palette
}

// fgToBg is the distance between a foreground color and the corresponding
// background color in the ANSI codes.
const fgToBg = color.BgBlack - color.FgBlack

// Attributes returns the console attributes for a set of tagged-text
// attributes.
func (fw *ConsoleFixedWidth) Attributes(a *attrs.Attrs) []color.Attribute {
	if a == nil {
		return nil
	}
	var cattrs []color.Attribute
	if fg, ok := fw.lookup(a.Options["foreground"]); ok {
		cattrs = append(cattrs, fg)
	}
	if bg, ok := fw.lookup(a.Options["background"]); ok {
		cattrs = append(cattrs, bg+fgToBg)
	}
	if a.Font.Weight == attrs.WeightBold {
		cattrs = append(cattrs, color.Bold)
	}
	if a.Font.Slant == attrs.SlantItalic {
		cattrs = append(cattrs, color.Italic)
	}
	if a.Font.Underline == attrs.On {
		cattrs = append(cattrs, color.Underline)
	}
	if a.Font.Overstrike == attrs.On {
		cattrs = append(cattrs, color.CrossedOut)
	}
	return cattrs
}

func (fw *ConsoleFixedWidth) lookup(name any) (color.Attribute, bool) {
	s, ok := name.(string)
	if !ok {
		return 0, false
	}
	c, ok := fw.palette[strings.ToLower(s)]
	return c, ok
}

// StyledText is called by the output driver to output a sequence of
// uniformly styled text. It uses colors to visualize attributes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, a *attrs.Attrs, w io.Writer) {
	if cattrs := fw.Attributes(a); len(cattrs) > 0 {
		color.New(cattrs...).Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// Preamble is called by the output driver before tagged text will be output.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
}

// Postamble will be called after tagged text has been output. It terminates
// the last line.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	fw.Newline(w)
}

// Newline will be called at the end of every line of text.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write([]byte{'\n'})
}
