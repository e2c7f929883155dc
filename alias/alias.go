package alias

import (
	"fmt"
	"strings"
)

// Key is a canonical attribute key. The set of keys is closed; Unknown stands
// for every name outside of the vocabulary.
type Key uint8

// The attribute vocabulary, in alphabetical order of the canonical names.
const (
	Unknown Key = iota
	ActiveBackground
	ActiveForeground
	ActiveStyle
	Anchor
	Background
	Bitmap
	Bold
	BorderWidth
	Capitalize
	Case
	Class
	Colormap
	Command
	Compound
	Container
	Cursor
	Default
	DisabledForeground
	Expand
	ExportSelection
	Family
	Fill
	Font
	Foreground
	FOverstrike
	FUnderline
	Height
	HighlightBackground
	HighlightColor
	HighlightThickness
	Image
	IPadX
	IPadY
	Italic
	Justify
	ListVariable
	Lower
	OverRelief
	Overstrike
	PadX
	PadY
	Relief
	RepeatDelay
	RepeatInterval
	SelectBackground
	SelectBorderWidth
	SelectForeground
	SelectMode
	SetGrid
	Side
	Size
	Slant
	State
	SwapCase
	TakeFocus
	Text
	TextVariable
	Title
	Underline
	Upper
	Visual
	Weight
	Width
	WrapLength
	XScrollCommand
	YScrollCommand
	keyCount
)

type names struct {
	canonical string
	short     string
}

// vocabulary maps each key to its canonical name and alias. Keys without a
// registered abbreviation (pack options like 'side') alias to themselves.
var vocabulary = [keyCount]names{
	Unknown:             {"", ""},
	ActiveBackground:    {"activebackground", "abg"},
	ActiveForeground:    {"activeforeground", "afg"},
	ActiveStyle:         {"activestyle", "as"},
	Anchor:              {"anchor", "anc"},
	Background:          {"background", "bg"},
	Bitmap:              {"bitmap", "bit"},
	Bold:                {"bold", "b"},
	BorderWidth:         {"borderwidth", "bd"},
	Capitalize:          {"capitalize", "cap"},
	Case:                {"case", "cas"},
	Class:               {"class", "cls"},
	Colormap:            {"colormap", "cm"},
	Command:             {"command", "cmd"},
	Compound:            {"compound", "cpd"},
	Container:           {"container", "ctr"},
	Cursor:              {"cursor", "cur"},
	Default:             {"default", "def"},
	DisabledForeground:  {"disabledforeground", "dfg"},
	Expand:              {"expand", "expand"},
	ExportSelection:     {"exportselection", "es"},
	Family:              {"family", "fam"},
	Fill:                {"fill", "fill"},
	Font:                {"font", "fon"},
	Foreground:          {"foreground", "fg"},
	FOverstrike:         {"foverstrike", "o"},
	FUnderline:          {"funderline", "u"},
	Height:              {"height", "h"},
	HighlightBackground: {"highlightbackground", "hlb"},
	HighlightColor:      {"highlightcolor", "hlc"},
	HighlightThickness:  {"highlightthickness", "hlt"},
	Image:               {"image", "img"},
	IPadX:               {"ipadx", "ipx"},
	IPadY:               {"ipady", "ipy"},
	Italic:              {"italic", "i"},
	Justify:             {"justify", "jus"},
	ListVariable:        {"listvariable", "lv"},
	Lower:               {"lower", "lo"},
	OverRelief:          {"overrelief", "or"},
	Overstrike:          {"overstrike", "overstrike"},
	PadX:                {"padx", "px"},
	PadY:                {"pady", "py"},
	Relief:              {"relief", "rel"},
	RepeatDelay:         {"repeatdelay", "rd"},
	RepeatInterval:      {"repeatinterval", "ri"},
	SelectBackground:    {"selectbackground", "sbg"},
	SelectBorderWidth:   {"selectborderwidth", "sbd"},
	SelectForeground:    {"selectforeground", "sfg"},
	SelectMode:          {"selectmode", "sm"},
	SetGrid:             {"setgrid", "sg"},
	Side:                {"side", "side"},
	Size:                {"size", "sz"},
	Slant:               {"slant", "sl"},
	State:               {"state", "sta"},
	SwapCase:            {"swapcase", "sw"},
	TakeFocus:           {"takefocus", "tf"},
	Text:                {"text", "txt"},
	TextVariable:        {"textvariable", "tv"},
	Title:               {"title", "ti"},
	Underline:           {"underline", "ul"},
	Upper:               {"upper", "up"},
	Visual:              {"visual", "visual"},
	Weight:              {"weight", "wt"},
	Width:               {"width", "w"},
	WrapLength:          {"wraplength", "wl"},
	XScrollCommand:      {"xscrollcommand", "xsc"},
	YScrollCommand:      {"yscrollcommand", "ysc"},
}

// byCanonical and byAlias are filled once at package initialization and are
// read-only afterwards.
var byCanonical, byAlias = buildIndex()

func buildIndex() (map[string]Key, map[string]Key) {
	canon := make(map[string]Key, keyCount)
	short := make(map[string]Key, keyCount)
	for k := Unknown + 1; k < keyCount; k++ {
		n := vocabulary[k]
		if _, dup := canon[n.canonical]; dup {
			panic(fmt.Sprintf("alias: duplicate canonical name %q", n.canonical))
		}
		canon[n.canonical] = k
		if n.short == n.canonical {
			continue
		}
		if _, dup := short[n.short]; dup {
			panic(fmt.Sprintf("alias: duplicate alias %q", n.short))
		}
		short[n.short] = k
	}
	return canon, short
}

// String returns the canonical name of k, or "" for Unknown.
func (k Key) String() string {
	if k >= keyCount {
		return ""
	}
	return vocabulary[k].canonical
}

// Alias returns the short alias of k. Keys without an abbreviation return
// their canonical name.
func (k Key) Alias() string {
	if k >= keyCount {
		return ""
	}
	return vocabulary[k].short
}

// Keys returns all keys of the vocabulary, Unknown excluded.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := Unknown + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Lookup finds the key for an exact canonical name or alias. Matching
// ignores case.
func Lookup(name string) (Key, bool) {
	name = strings.ToLower(name)
	if k, ok := byCanonical[name]; ok {
		return k, true
	}
	if k, ok := byAlias[name]; ok {
		return k, true
	}
	return Unknown, false
}

// Alias returns the alias of a canonical option name. Names which are not
// canonical option names, including aliases, are returned unchanged.
func Alias(option string) string {
	if k, ok := byCanonical[strings.ToLower(option)]; ok {
		return k.Alias()
	}
	return option
}

// Unalias expands an alias to its canonical option name. Names which are not
// aliases are returned unchanged.
func Unalias(option string) string {
	if k, ok := byAlias[strings.ToLower(option)]; ok {
		tracer().Debugf("unalias %q -> %q", option, k.String())
		return k.String()
	}
	return option
}

// Table returns a copy of the complete alias-to-option mapping.
func Table() map[string]string {
	m := make(map[string]string, len(byAlias))
	for a, k := range byAlias {
		m[a] = k.String()
	}
	return m
}
