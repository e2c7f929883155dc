package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/ttext"
	"github.com/npillmayer/ttext/attrs"
	"github.com/npillmayer/ttext/chunk"
)

// Dump writes one line per chunk of tagged text, for inspection. Each line
// holds the chunk's index and its attributes, encoded with key spelling mode
// and including the chunk's text as attribute 'text'. For
// 'Hello <t fg=red b>World</t>' and KeyModePlain the output is
//
//	0: text="Hello "
//	1: foreground=red text=World bold=1
func Dump(w io.Writer, text string, mode attrs.KeyMode) error {
	if w == nil {
		return ttext.ErrIllegalArguments
	}
	chunks, err := chunk.Parse(text)
	if err != nil {
		return err
	}
	cfg := &attrs.Config{Mode: mode, Extend: true}
	for i, c := range chunks {
		a, err := c.Decode(nil)
		if err != nil {
			return fmt.Errorf("chunk #%d: %w", i, err)
		}
		a.Options["text"] = c.Text
		list, err := a.Encode(cfg)
		if err != nil {
			return fmt.Errorf("chunk #%d: %w", i, err)
		}
		if _, err = fmt.Fprintf(w, "%d: %s\n", i, list); err != nil {
			return err
		}
	}
	return nil
}
