package render

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/ttext"
	"github.com/npillmayer/ttext/attrs"
	"github.com/npillmayer/ttext/chunk"
	"github.com/npillmayer/ttext/reflow"
)

// Format is an interface for output drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, *attrs.Attrs, io.Writer) // nil attributes for plain text
	Newline(io.Writer)
}

// Output wraps tagged text and renders it using a given format.
//
// text and format must be given. config may be nil, in which case text is
// not wrapped.
func Output(text string, out io.Writer, config *reflow.Config, format Format) error {
	if out == nil || format == nil {
		return ttext.ErrIllegalArguments
	}
	wrapped, err := reflow.WrapWithConfig(text, config)
	if err != nil {
		return err
	}
	chunks, err := chunk.Parse(wrapped)
	if err != nil {
		return err
	}
	format.Preamble(out)
	for _, c := range chunks {
		a, s := styleOf(c)
		for i, line := range strings.Split(s, "\n") {
			if i > 0 {
				format.Newline(out)
			}
			if line != "" {
				format.StyledText(line, a, out)
			}
		}
	}
	format.Postamble(out)
	return nil
}

// styleOf decodes the attributes of a chunk and applies its case directive.
// Chunks with invalid attributes are returned unstyled and unchanged.
func styleOf(c chunk.Chunk) (*attrs.Attrs, string) {
	if c.Attrs == "" {
		return nil, c.Text
	}
	a, err := c.Decode(nil)
	if err != nil {
		tracer().Infof("rendering chunk %q unstyled: %v", c.Text, err)
		return nil, c.Text
	}
	return &a, a.Case.Apply(c.Text)
}

// Print outputs tagged text to stdout, using a console format.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive).
func Print(text string, config *reflow.Config) error {
	if config == nil {
		config = reflow.ConfigFromTerminal()
	}
	return Output(text, os.Stdout, config, NewConsoleFixedWidthFormat(nil))
}
