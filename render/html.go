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
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/ttext/attrs"
	"github.com/npillmayer/ttext/reflow"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format for simple HTML output. Tagged text is output as a
// `pre` element, with styled runs of text as `span` elements carrying CSS
// properties.
type HTML struct {
	pre *html.Node
}

// NewHTML creates an HTML format.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs tagged text as HTML.
//
// If parameter config is nil, a default configuration will be used, wrapping
// text at 40 columns.
func (h *HTML) Print(text string, w io.Writer, config *reflow.Config) error {
	if config == nil {
		config = &reflow.Config{Width: 40}
	}
	return Output(text, w, config, h)
}

// Preamble is called by the output driver before tagged text will be output.
// It starts a new `pre` element.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	h.pre = &html.Node{Type: html.ElementNode, Data: "pre", DataAtom: atom.Pre}
}

// StyledText is called by the output driver to output a sequence of
// uniformly styled text. Styled text is wrapped into a `span` element.
// (Part of interface Format)
func (h *HTML) StyledText(s string, a *attrs.Attrs, w io.Writer) {
	text := &html.Node{Type: html.TextNode, Data: s}
	style := CSS(a)
	if style == "" {
		h.pre.AppendChild(text)
		return
	}
	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "style", Val: style}},
	}
	span.AppendChild(text)
	h.pre.AppendChild(span)
}

// Newline will be called at the end of every line of text.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	h.pre.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
}

// Postamble will be called after tagged text has been output. It renders the
// `pre` element to w.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	if err := html.Render(w, h.pre); err != nil {
		tracer().Errorf("rendering HTML: %v", err)
	}
	h.pre = nil
}

// CSS returns CSS properties for tagged-text attributes, sorted by name.
// Attributes without a CSS equivalent are ignored.
func CSS(a *attrs.Attrs) string {
	if a == nil {
		return ""
	}
	props := make(map[string]string)
	if fg, ok := a.Options["foreground"].(string); ok {
		props["color"] = fg
	}
	if bg, ok := a.Options["background"].(string); ok {
		props["background-color"] = bg
	}
	if a.Font.Family != "" {
		props["font-family"] = fmt.Sprintf("%q", a.Font.Family)
	}
	if a.Font.Size > 0 {
		props["font-size"] = fmt.Sprintf("%dpt", a.Font.Size)
	} else if a.Font.Size < 0 { // negative sizes are pixels
		props["font-size"] = fmt.Sprintf("%dpx", -a.Font.Size)
	}
	if a.Font.Weight != "" {
		props["font-weight"] = string(a.Font.Weight)
	}
	if a.Font.Slant == attrs.SlantItalic {
		props["font-style"] = "italic"
	}
	var deco []string
	if a.Font.Underline == attrs.On {
		deco = append(deco, "underline")
	}
	if a.Font.Overstrike == attrs.On {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		props["text-decoration"] = strings.Join(deco, " ")
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name + ": " + props[name] + ";")
	}
	return b.String()
}
