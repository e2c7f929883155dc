package attrs

import "strings"

// KeyMode selects the spelling of keys when encoding attribute lists.
type KeyMode int

const (
	// KeyModePlain keeps option keys as given by the caller. Font facets and
	// case are spelled with their canonical names.
	KeyModePlain KeyMode = iota
	// KeyModeAlias spells every known key with its alias.
	KeyModeAlias
	// KeyModeOption spells every known key with its canonical name.
	KeyModeOption
)

func (m KeyMode) String() string {
	switch m {
	case KeyModeAlias:
		return "alias"
	case KeyModeOption:
		return "option"
	}
	return ""
}

// ParseKeyMode interprets a key mode name. Only the first letter is
// significant: 'a' selects aliases, 'o' canonical option names. Everything
// else selects KeyModePlain.
func ParseKeyMode(s string) KeyMode {
	switch {
	case strings.HasPrefix(strings.ToLower(s), "a"):
		return KeyModeAlias
	case strings.HasPrefix(strings.ToLower(s), "o"):
		return KeyModeOption
	}
	return KeyModePlain
}

// Config controls decoding and encoding of attribute lists. A nil *Config
// is valid and selects the defaults.
type Config struct {
	Mode KeyMode // key spelling for encoding
	// Auto couples defaults: an image or bitmap implies compound=center, a
	// relief other than 'flat' implies borderwidth=1, unless the attribute
	// list sets these explicitly.
	Auto bool
	// Extend includes option 'text' when encoding.
	Extend bool
	// FontName resolves the value of option 'font' to the name written by
	// encoding. If nil, the value is written as is.
	FontName func(any) string
}

func (c *Config) mode() KeyMode {
	if c == nil {
		return KeyModePlain
	}
	return c.Mode
}

func (c *Config) auto() bool {
	return c != nil && c.Auto
}

func (c *Config) extend() bool {
	return c != nil && c.Extend
}

func (c *Config) fontName(v any) any {
	if c == nil || c.FontName == nil || v == nil {
		return v
	}
	return c.FontName(v)
}
