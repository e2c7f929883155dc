package attrs

import (
	"strings"

	"github.com/npillmayer/ttext/alias"
)

// Classify resolves an attribute key to a key of the vocabulary and the
// name to store it under. Exact canonical names and aliases are matched
// first (ignoring case), then a fixed set of prefixes, e.g. 'back' or 'fore'.
// A key is renamed to the canonical name only if it is an alias or an
// abbreviation of the canonical name. Other keys are lowercased, even if a
// prefix rule assigns them a kind: 'customkey' is handled like 'cursor' but
// keeps its name.
func Classify(key string) (alias.Key, string) {
	lower := strings.ToLower(key)
	if k, ok := alias.Lookup(lower); ok {
		return k, k.String()
	}
	k := byPrefix(lower)
	if k != alias.Unknown && strings.HasPrefix(k.String(), lower) {
		tracer().Debugf("attribute %q resolves to %q", key, k.String())
		return k, k.String()
	}
	return k, lower
}

// isCanonical is true if name is the canonical spelling of k.
func isCanonical(k alias.Key, name string) bool {
	return k != alias.Unknown && k.String() == name
}

// byPrefix implements the abbreviations accepted beyond the alias table.
func byPrefix(key string) alias.Key {
	p2, p3, p4 := prefix(key, 2), prefix(key, 3), prefix(key, 4)
	switch {
	case p3 == "bac":
		return alias.Background
	case p3 == "for":
		return alias.Foreground
	case p2 == "bi":
		return alias.Bitmap
	case p2 == "im":
		return alias.Image
	case p3 == "bor":
		return alias.BorderWidth
	case p4 == "comm":
		return alias.Command
	case p4 == "comp":
		return alias.Compound
	case p2 == "he":
		return alias.Height
	case p2 == "wi":
		return alias.Width
	case p3 == "rep":
		if strings.HasPrefix(key, "repeati") {
			return alias.RepeatInterval
		}
		return alias.RepeatDelay
	case p2 == "cu":
		return alias.Cursor
	case p3 == "fon":
		return alias.Font
	case key == "r" || p2 == "re":
		return alias.Relief
	case p2 == "un":
		return alias.Underline
	case strings.HasPrefix(key, "selectb"):
		return alias.SelectBackground
	case strings.HasPrefix(key, "selectf"):
		return alias.SelectForeground
	case p2 == "fa":
		return alias.Family
	case p2 == "si":
		return alias.Size
	case p3 == "bol":
		return alias.Bold
	case p2 == "we":
		return alias.Weight
	case p2 == "it":
		return alias.Italic
	case p2 == "sl":
		return alias.Slant
	case p3 == "fun":
		return alias.FUnderline
	case p3 == "fov":
		return alias.FOverstrike
	case p2 == "up":
		return alias.Upper
	case p3 == "cap":
		return alias.Capitalize
	case p2 == "lo":
		return alias.Lower
	case p2 == "ti":
		return alias.Title
	case p2 == "sw":
		return alias.SwapCase
	}
	return alias.Unknown
}

// prefix returns the first n bytes of s, or "" if s is shorter than n.
// A key shorter than a prefix is never treated as an abbreviation of it.
func prefix(s string, n int) string {
	if len(s) < n {
		return ""
	}
	return s[:n]
}
