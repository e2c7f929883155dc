package inline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ttext/attrs"
)

// Some standard text formats
const (
	PlainStyle Style = 0
	BoldStyle  Style = 1 << iota
	ItalicsStyle
	UnderlineStyle
	StrikeStyle
)

func styleString(s Style) string {
	switch s {
	case PlainStyle:
		return "plain"
	case BoldStyle:
		return "b"
	case ItalicsStyle:
		return "i"
	case UnderlineStyle:
		return "u"
	case StrikeStyle:
		return "s"
	}
	return fmt.Sprintf("Style(%d)", s)
}

// Style is a text style, applicable on runs of characters
type Style int

func (s Style) Add(other Style) Style {
	return s | other
}

func (s Style) String() string {
	if s == 0 {
		return styleString(0)
	}
	str := ""
	for i := 1; i < 5; i++ {
		if s&(1<<i) > 0 {
			str = str + styleString(1<<i)
		}
	}
	if str != "" {
		return str
	}
	return styleString(s)
}

// StyleFromHTMLName returns the style for an HTML element name, or
// PlainStyle for elements without a style.
func StyleFromHTMLName(name string) Style {
	switch strings.ToLower(name) {
	case "b", "strong":
		return BoldStyle
	case "i", "em":
		return ItalicsStyle
	case "u", "ins":
		return UnderlineStyle
	case "s", "strike", "del":
		return StrikeStyle
	}
	return PlainStyle
}

// Font returns the font facets a style stands for.
func (s Style) Font() attrs.Font {
	var f attrs.Font
	if s&BoldStyle > 0 {
		f.Weight = attrs.WeightBold
	}
	if s&ItalicsStyle > 0 {
		f.Slant = attrs.SlantItalic
	}
	if s&UnderlineStyle > 0 {
		f.Underline = attrs.On
	}
	if s&StrikeStyle > 0 {
		f.Overstrike = attrs.On
	}
	return f
}
