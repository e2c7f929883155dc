package reflow

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConfigFromTerminal is a simple helper for creating a wrapping Config.
// It checks wether stdin is a terminal, and if so it reads the terminal's width
// and sets Config.Width accordingly, leaving a small margin. Otherwise the
// width is 65 columns. Config.Context is created based on heuristics from the
// user environment.
func ConfigFromTerminal() *Config {
	config := &Config{Width: 65}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			config.Width = widthFor(w)
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("setting line width to %d columns", config.Width)
	return config
}

func widthFor(columns int) int {
	switch {
	case columns > 65:
		return columns - 10
	case columns > 30:
		return columns - 5
	case columns > 10:
		return columns
	}
	return 10
}
