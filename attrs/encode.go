package attrs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/ttext/alias"
)

// Encode serializes options, font facets and a case directive into an
// attribute list. It is the reverse of Parse: for the default configuration
//
//	Parse(Encode(opts, font, c, nil))
//
// reproduces opts, font and c. Tokens are written in a stable order: options
// sorted by key, then font facets, then the case directive.
func Encode(options Options, font Font, c Case, cfg *Config) (string, error) {
	return Attrs{Options: options, Font: font, Case: c}.Encode(cfg)
}

// Encode serializes a into an attribute list. See function Encode.
func (a Attrs) Encode(cfg *Config) (string, error) {
	e := encoder{cfg: cfg, mode: cfg.mode()}
	for _, key := range a.Options.Keys() {
		if err := e.encode(key, a.Options[key]); err != nil {
			tracer().Errorf("encode attributes: %v", err)
			return "", err
		}
	}
	for _, f := range a.Font.facets() {
		e.encodeFacet(f.key, f.value)
	}
	if a.Case != CaseNone {
		e.put(e.facetKey(alias.Case), string(a.Case))
	}
	return e.String(), nil
}

// slot identifies a token which may be overwritten after it has been
// written, see encoder.deflt.
type slot int

const (
	compoundSlot slot = iota
	borderSlot
)

// encoder collects tokens. Tokens produced as coupled defaults occupy a slot
// and are replaced in place if the attribute is set explicitly later.
type encoder struct {
	cfg    *Config
	mode   KeyMode
	tokens []string
	slots  map[slot]int
}

func (e *encoder) String() string {
	return strings.Join(e.tokens, " ")
}

func (e *encoder) put(key string, v any) {
	e.tokens = append(e.tokens, token(key, v))
}

// deflt writes a default token unless the slot is occupied.
func (e *encoder) deflt(s slot, key string, v any) {
	if _, ok := e.slots[s]; ok {
		return
	}
	e.claim(s)
	e.put(key, v)
}

// set writes an explicit token for a slot, replacing a default written
// earlier.
func (e *encoder) set(s slot, key string, v any) {
	if i, ok := e.slots[s]; ok {
		tracer().Debugf("replacing %q by %s=%v", e.tokens[i], key, v)
		e.tokens[i] = token(key, v)
		return
	}
	e.claim(s)
	e.put(key, v)
}

func (e *encoder) claim(s slot) {
	if e.slots == nil {
		e.slots = make(map[slot]int, 2)
	}
	e.slots[s] = len(e.tokens)
}

// encode writes a single option.
func (e *encoder) encode(key string, v any) error {
	if rejected(strings.ToLower(key)) {
		return fmt.Errorf("%w: %s", ErrUnrecognizedAttribute, key)
	}
	k, name := Classify(key)
	out := e.optionKey(key, k, name)
	switch k {
	case alias.Bitmap, alias.Image:
		e.put(out, v)
		if e.cfg.auto() {
			e.deflt(compoundSlot, e.facetKey(alias.Compound), "center")
		}
	case alias.Compound:
		e.set(compoundSlot, out, v)
	case alias.BorderWidth:
		e.set(borderSlot, out, v)
	case alias.Relief:
		e.put(out, v)
		if e.cfg.auto() && stringOf(v) != "flat" {
			e.deflt(borderSlot, e.facetKey(alias.BorderWidth), 1)
		}
	case alias.Font:
		e.put(out, e.cfg.fontName(v))
	case alias.Text:
		if e.cfg.extend() {
			e.put(out, v)
		}
	case alias.Family, alias.Size, alias.Bold, alias.Weight, alias.Italic, alias.Slant,
		alias.FUnderline, alias.FOverstrike, alias.Overstrike:
		e.encodeFacet(k.String(), v)
	case alias.Case, alias.Upper, alias.Capitalize, alias.Lower, alias.Title, alias.SwapCase:
		if c := caseOf(k, v); c != CaseNone {
			e.put(e.facetKey(alias.Case), string(c))
		}
	default:
		e.put(out, v)
	}
	return nil
}

// encodeFacet writes a font facet. Weight and slant are written as flags
// 'bold' and 'italic' with values 1 or 0.
func (e *encoder) encodeFacet(facet string, v any) {
	k, _ := Classify(facet)
	switch k {
	case alias.Family:
		e.put(e.facetKey(alias.Family), stringOf(v))
	case alias.Size:
		e.put(e.facetKey(alias.Size), v)
	case alias.Bold:
		e.put(e.facetKey(alias.Bold), ToggleOf(truthy(v)).Int())
	case alias.Weight:
		e.put(e.facetKey(alias.Bold), ToggleOf(stringOf(v) == string(WeightBold)).Int())
	case alias.Italic:
		e.put(e.facetKey(alias.Italic), ToggleOf(truthy(v)).Int())
	case alias.Slant:
		e.put(e.facetKey(alias.Italic), ToggleOf(stringOf(v) == string(SlantItalic)).Int())
	case alias.FUnderline:
		e.put(e.facetKey(alias.FUnderline), ToggleOf(truthy(v)).Int())
	case alias.FOverstrike, alias.Overstrike:
		e.put(e.facetKey(alias.FOverstrike), ToggleOf(truthy(v)).Int())
	}
}

// caseOf interprets an option belonging to the case family.
func caseOf(k alias.Key, v any) Case {
	if k == alias.Case {
		if v == nil {
			return CaseNone
		}
		return CaseFromPrefix(stringOf(v))
	}
	if truthy(v) {
		return CaseFromPrefix(k.String())
	}
	return CaseNone
}

// optionKey spells an option key according to the key mode. Keys which
// are not spellings of a vocabulary key are always written lowercased.
func (e *encoder) optionKey(key string, k alias.Key, name string) string {
	if !isCanonical(k, name) {
		return name
	}
	switch e.mode {
	case KeyModeAlias:
		return k.Alias()
	case KeyModeOption:
		return k.String()
	}
	return strings.ToLower(key)
}

// facetKey spells keys which have no caller-supplied spelling: font facets,
// case and coupled defaults.
func (e *encoder) facetKey(k alias.Key) string {
	if e.mode == KeyModeAlias {
		return k.Alias()
	}
	return k.String()
}

// token formats a single key=value element. A nil value yields a bare key.
func token(key string, v any) string {
	switch x := v.(type) {
	case nil:
		return key
	case string:
		if x == "" {
			return key + `=""`
		}
		return key + "=" + Quote(x)
	case int:
		return key + "=" + strconv.Itoa(x)
	case bool:
		return key + "=" + strconv.Itoa(ToggleOf(x).Int())
	}
	return key + "=" + Quote(stringOf(v))
}
