package attrs

import (
	"strconv"
	"strings"
)

// Weight is a font weight. Decoding produces WeightBold or WeightNormal for
// flags, explicit 'weight=…' values are kept verbatim.
type Weight string

// Slant is a font slant. Decoding produces SlantItalic or SlantRoman for
// flags, explicit 'slant=…' values are kept verbatim.
type Slant string

// Font weights and slants known to widget toolkits.
const (
	WeightBold   Weight = "bold"
	WeightNormal Weight = "normal"
	SlantItalic  Slant  = "italic"
	SlantRoman   Slant  = "roman"
)

// Toggle is a tri-state font flag. The zero value means "not set".
type Toggle int8

// Toggle values
const (
	Unset Toggle = iota
	Off
	On
)

// ToggleOf maps a boolean to On or Off.
func ToggleOf(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

// Int returns 1 for On and 0 otherwise, the representation used by font
// descriptions of widget toolkits.
func (t Toggle) Int() int {
	if t == On {
		return 1
	}
	return 0
}

// Font holds the six font facets. Zero values mean "not set"; for Size this
// coincides with the toolkit convention that size 0 selects the default size.
type Font struct {
	Family     string
	Size       int
	Weight     Weight
	Slant      Slant
	Underline  Toggle
	Overstrike Toggle
}

// IsEmpty is true if no facet is set.
func (f Font) IsEmpty() bool {
	return f == Font{}
}

// Facet names of a font, as used for font descriptions. Merged attribute maps
// use FUnderline and FOverstrike instead of the last two.
const (
	FacetFamily     = "family"
	FacetSize       = "size"
	FacetWeight     = "weight"
	FacetSlant      = "slant"
	FacetUnderline  = "underline"
	FacetOverstrike = "overstrike"
	FUnderline      = "funderline"
	FOverstrike     = "foverstrike"
)

// Get returns the value of a font facet by name. Both the plain and the
// f-prefixed spelling of underline and overstrike are accepted. Toggles are
// reported as 1 or 0. The second return value is false for unset facets and
// unknown names.
func (f Font) Get(facet string) (any, bool) {
	switch strings.ToLower(facet) {
	case FacetFamily:
		return f.Family, f.Family != ""
	case FacetSize:
		return f.Size, f.Size != 0
	case FacetWeight:
		return string(f.Weight), f.Weight != ""
	case FacetSlant:
		return string(f.Slant), f.Slant != ""
	case FacetUnderline, FUnderline:
		return f.Underline.Int(), f.Underline != Unset
	case FacetOverstrike, FOverstrike:
		return f.Overstrike.Int(), f.Overstrike != Unset
	}
	return nil, false
}

// facets lists the set facets of f in font description order, with keys
// spelled for a merged attribute map.
func (f Font) facets() []entry {
	var fs []entry
	if f.Family != "" {
		fs = append(fs, entry{FacetFamily, f.Family})
	}
	if f.Size != 0 {
		fs = append(fs, entry{FacetSize, f.Size})
	}
	if f.Weight != "" {
		fs = append(fs, entry{FacetWeight, string(f.Weight)})
	}
	if f.Slant != "" {
		fs = append(fs, entry{FacetSlant, string(f.Slant)})
	}
	if f.Underline != Unset {
		fs = append(fs, entry{FUnderline, f.Underline.Int()})
	}
	if f.Overstrike != Unset {
		fs = append(fs, entry{FOverstrike, f.Overstrike.Int()})
	}
	return fs
}

// set assigns a facet from a merged attribute map value.
func (f *Font) set(facet string, v any) error {
	switch facet {
	case FacetFamily:
		f.Family = stringOf(v)
	case FacetSize:
		n, err := intOf(v)
		if err != nil {
			return invalidInteger(facet, stringOf(v))
		}
		f.Size = n
	case FacetWeight:
		f.Weight = Weight(stringOf(v))
	case FacetSlant:
		f.Slant = Slant(stringOf(v))
	case FacetUnderline, FUnderline:
		f.Underline = ToggleOf(truthy(v))
	case FacetOverstrike, FOverstrike:
		f.Overstrike = ToggleOf(truthy(v))
	}
	return nil
}

// --- Value helpers ---------------------------------------------------------

func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case Toggle:
		return strconv.Itoa(x.Int())
	case interface{ String() string }:
		return x.String()
	}
	return ""
}

func intOf(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case Toggle:
		return x.Int(), nil
	}
	return strconv.Atoi(strings.TrimSpace(stringOf(v)))
}

// truthy interprets a flag value: anything but "0" and "False" is true, and
// so is a bare flag (nil).
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return x
	case int:
		return x != 0
	case Toggle:
		return x == On
	}
	s := stringOf(v)
	return s != "0" && s != "False"
}
