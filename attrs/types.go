package attrs

import (
	"sort"
	"strings"

	"github.com/npillmayer/ttext/alias"
)

// Options holds generic visual options, keyed by canonical option name.
// Values are strings, ints or nil (a bare flag).
type Options map[string]any

// Keys returns the option keys in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pare returns a copy of o without the entries which are equal to the
// corresponding entries of ref. With strict set, entries with keys not
// present in ref are dropped as well.
func (o Options) Pare(ref Options, strict bool) Options {
	pared := make(Options, len(o))
	for k, v := range o {
		r, found := ref[k]
		if strict && !found {
			continue
		}
		if found && stringOf(r) == stringOf(v) {
			continue
		}
		pared[k] = v
	}
	return pared
}

// Attrs is the decoded form of an attribute list.
type Attrs struct {
	Options Options
	Font    Font
	Case    Case
}

// entry is a key/value pair of a merged attribute map.
type entry struct {
	key   string
	value any
}

// Merged combines options, font facets and case into a single map. Font
// underline and overstrike are spelled 'funderline' and 'foverstrike' to keep
// them apart from option 'underline'. The case directive is stored under key
// 'case'.
func (a Attrs) Merged() map[string]any {
	m := make(map[string]any, len(a.Options)+7)
	for k, v := range a.Options {
		m[k] = v
	}
	for _, f := range a.Font.facets() {
		m[f.key] = f.value
	}
	if a.Case != CaseNone {
		m[alias.Case.String()] = string(a.Case)
	}
	return m
}

// FromMerged splits a merged attribute map into options, font facets and a
// case directive. It is the inverse of Attrs.Merged. Besides key 'case', the
// case flags 'upper', 'lower', 'title', 'swapcase' and 'capitalize' are
// accepted for the case directive.
func FromMerged(m map[string]any) (Attrs, error) {
	a := Attrs{Options: Options{}}
	for k, v := range m {
		key := strings.ToLower(k)
		switch key {
		case FacetFamily, FacetSize, FacetWeight, FacetSlant, FUnderline, FOverstrike:
			if err := a.Font.set(key, v); err != nil {
				return Attrs{}, err
			}
		case alias.Case.String():
			if v != nil {
				a.Case = CaseFromPrefix(stringOf(v))
			}
		case alias.Upper.String(), alias.Lower.String(), alias.Title.String(),
			alias.SwapCase.String(), alias.Capitalize.String():
			if truthy(v) {
				a.Case = CaseFromPrefix(key)
			}
		default:
			a.Options[k] = v
		}
	}
	return a, nil
}
