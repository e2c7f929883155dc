package attrs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/ttext/alias"
)

// Parse decodes an attribute list with default configuration.
//
//	Parse("bg=white fg=blue bd=2 relief=solid underline=10")
//
// yields options background=white, foreground=blue, borderwidth=2,
// relief=solid and underline=10, no font facets and no case.
func Parse(list string) (Attrs, error) {
	var a Attrs
	if err := a.Decode(list, nil); err != nil {
		return Attrs{}, err
	}
	return a, nil
}

// Decode decodes an attribute list on top of a. Options, font facets and
// case already present in a are kept unless the list overrides them.
// If decoding fails, a is left unchanged.
func (a *Attrs) Decode(list string, cfg *Config) error {
	tokens, err := Split(list)
	if err != nil {
		return err
	}
	d := decoder{auto: cfg.auto(), attrs: Attrs{
		Options: make(Options, len(a.Options)+len(tokens)),
		Font:    a.Font,
		Case:    a.Case,
	}}
	for k, v := range a.Options {
		d.attrs.Options[k] = v
	}
	for _, token := range tokens {
		if err := d.decode(token); err != nil {
			tracer().Errorf("decode attributes %q: %v", list, err)
			return err
		}
	}
	*a = d.attrs
	return nil
}

// Lookup decodes an attribute list and returns the value of a single
// attribute. name may be any spelling accepted by Classify. Font facets are
// reported as by Font.Get, the case directive as a string. The boolean
// result is false if the attribute is not set.
func Lookup(list string, name string) (any, bool, error) {
	a, err := Parse(list)
	if err != nil {
		return nil, false, err
	}
	k, stored := Classify(name)
	switch k {
	case alias.Case, alias.Upper, alias.Capitalize, alias.Lower, alias.Title, alias.SwapCase:
		return string(a.Case), a.Case != CaseNone, nil
	case alias.Family, alias.Size:
		v, ok := a.Font.Get(k.String())
		return v, ok, nil
	case alias.Bold, alias.Weight:
		v, ok := a.Font.Get(FacetWeight)
		return v, ok, nil
	case alias.Italic, alias.Slant:
		v, ok := a.Font.Get(FacetSlant)
		return v, ok, nil
	case alias.FUnderline:
		v, ok := a.Font.Get(FUnderline)
		return v, ok, nil
	case alias.FOverstrike, alias.Overstrike:
		v, ok := a.Font.Get(FOverstrike)
		return v, ok, nil
	}
	v, ok := a.Options[stored]
	return v, ok, nil
}

type decoder struct {
	auto  bool
	attrs Attrs
}

// decode interprets a single token of an attribute list.
func (d *decoder) decode(token string) error {
	key, value, hasValue := strings.Cut(token, "=")
	if hasValue {
		value = Unquote(value)
		if value == "None" {
			return nil
		}
	}
	if rejected(strings.ToLower(key)) {
		return fmt.Errorf("%w: %s", ErrUnrecognizedAttribute, key)
	}
	var v any // nil for bare flags
	if hasValue {
		v = value
	}
	k, name := Classify(key)
	opts, font := d.attrs.Options, &d.attrs.Font
	switch k {
	case alias.Bitmap, alias.Image:
		opts[name] = v
		if d.auto {
			d.setDefault(alias.Compound, "center")
		}
	case alias.Relief:
		opts[name] = v
		if d.auto && value != "flat" {
			d.setDefault(alias.BorderWidth, "1")
		}
	case alias.Height, alias.Width, alias.RepeatDelay, alias.RepeatInterval:
		n, err := integer(name, v)
		if err != nil {
			return err
		}
		opts[name] = n
	case alias.Underline:
		if v == nil {
			opts[name] = -1
			break
		}
		n, err := integer(name, v)
		if err != nil {
			return err
		}
		opts[name] = n
	case alias.Family:
		font.Family = value
	case alias.Size:
		n, err := integer(name, v)
		if err != nil {
			return err
		}
		font.Size = n
	case alias.Bold:
		font.Weight = WeightNormal
		if truthy(v) {
			font.Weight = WeightBold
		}
	case alias.Weight:
		font.Weight = WeightBold
		if v != nil {
			font.Weight = Weight(value)
		}
	case alias.Italic:
		font.Slant = SlantRoman
		if truthy(v) {
			font.Slant = SlantItalic
		}
	case alias.Slant:
		font.Slant = SlantItalic
		if v != nil {
			font.Slant = Slant(value)
		}
	case alias.FUnderline:
		font.Underline = ToggleOf(truthy(v))
	case alias.FOverstrike, alias.Overstrike:
		font.Overstrike = ToggleOf(truthy(v))
	case alias.Case:
		if v != nil {
			d.attrs.Case = CaseFromPrefix(value)
		}
	case alias.Upper, alias.Capitalize, alias.Lower, alias.Title, alias.SwapCase:
		if truthy(v) {
			d.attrs.Case = CaseFromPrefix(k.String())
		}
	default: // colors, border width, compound, cursor, text and extension options
		opts[name] = v
	}
	return nil
}

// setDefault sets an option unless it is present already.
func (d *decoder) setDefault(k alias.Key, value string) {
	if _, ok := d.attrs.Options[k.String()]; !ok {
		tracer().Debugf("default %s=%s", k, value)
		d.attrs.Options[k.String()] = value
	}
}

func integer(key string, v any) (int, error) {
	s := stringOf(v)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalidInteger(key, s)
	}
	return n, nil
}

func invalidInteger(key, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidInteger, key, value)
}
