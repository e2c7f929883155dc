package attrs

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tokensOf(t *testing.T, list string) []string {
	t.Helper()
	tokens, err := Split(list)
	if err != nil {
		t.Fatalf("cannot split %q: %v", list, err)
	}
	sort.Strings(tokens)
	return tokens
}

func TestEncodeOptionMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	font := Font{Family: "Courier New", Underline: On, Overstrike: Off}
	list, err := Encode(Options{}, font, CaseTitle, &Config{Mode: KeyModeOption})
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("list = %s", list)
	expected := []string{`case=title`, `family="Courier New"`, `foverstrike=0`, `funderline=1`}
	if got := tokensOf(t, list); !reflect.DeepEqual(got, expected) {
		t.Errorf("tokens = %q, expected %q", got, expected)
	}
}

func TestEncodeAliasMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a := Attrs{
		Options: Options{"background": "white", "foreground": "navy", "myoption": "x y"},
		Font:    Font{Weight: WeightBold, Slant: SlantRoman, Underline: On},
		Case:    CaseUpper,
	}
	list, err := a.Encode(&Config{Mode: ParseKeyMode("alias")})
	if err != nil {
		t.Fatal(err)
	}
	expected := `bg=white fg=navy myoption="x y" b=1 i=0 u=1 cas=upper`
	if list != expected {
		t.Errorf("list = %q, expected %q", list, expected)
	}
}

func TestEncodePlainModeKeepsKeys(t *testing.T) {
	list, err := Encode(Options{"BG": "red", "relief": "sunken"}, Font{Family: "Times"}, CaseNone, nil)
	if err != nil {
		t.Fatal(err)
	}
	if list != "bg=red relief=sunken family=Times" {
		t.Errorf("unexpected list %q", list)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a := Attrs{
		Options: Options{
			"background":  "light blue",
			"borderwidth": "2",
			"relief":      "solid",
			"underline":   10,
			"height":      3,
			"cursor":      "hand2",
		},
		Font: Font{
			Family:     "Courier New",
			Size:       16,
			Weight:     WeightBold,
			Slant:      SlantRoman,
			Underline:  On,
			Overstrike: Off,
		},
		Case: CaseSwapCase,
	}
	for _, mode := range []KeyMode{KeyModePlain, KeyModeAlias, KeyModeOption} {
		list, err := a.Encode(&Config{Mode: mode})
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("%s: %s", mode, list)
		b, err := Parse(list)
		if err != nil {
			t.Fatalf("cannot decode %q: %v", list, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("mode %q: round trip yields %+v, expected %+v", mode, b, a)
		}
	}
}

func TestEncodeCoupledDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	cases := []struct {
		options Options
		mode    KeyMode
		out     string
	}{
		{Options{"image": "pic"}, KeyModePlain, "image=pic compound=center"},
		{Options{"bitmap": "info", "compound": "left"}, KeyModePlain, "bitmap=info compound=left"},
		{Options{"bitmap": "info", "compound": "left"}, KeyModeAlias, "bit=info cpd=left"},
		{Options{"compound": "top", "image": "pic"}, KeyModePlain, "compound=top image=pic"},
		{Options{"relief": "raised"}, KeyModePlain, "relief=raised borderwidth=1"},
		{Options{"relief": "raised"}, KeyModeAlias, "rel=raised bd=1"},
		{Options{"borderwidth": "4", "relief": "raised"}, KeyModePlain, "borderwidth=4 relief=raised"},
		{Options{"relief": "flat"}, KeyModePlain, "relief=flat"},
	}
	for _, c := range cases {
		list, err := Encode(c.options, Font{}, CaseNone, &Config{Mode: c.mode, Auto: true})
		if err != nil {
			t.Fatal(err)
		}
		if list != c.out {
			t.Errorf("Encode(%v) = %q, expected %q", c.options, list, c.out)
		}
	}
}

func TestEncoderSlots(t *testing.T) {
	e := encoder{}
	e.deflt(borderSlot, "bd", 1)
	e.put("relief", "raised")
	e.set(borderSlot, "bd", "5")
	e.deflt(borderSlot, "bd", 1)
	if got := e.String(); got != "bd=5 relief=raised" {
		t.Errorf("expected default to be replaced in place, have %q", got)
	}
}

func TestEncodeExtendAndFontName(t *testing.T) {
	options := Options{"text": "Hello World", "font": "TkFixedFont"}
	list, err := Encode(options, Font{}, CaseNone, nil)
	if err != nil {
		t.Fatal(err)
	}
	if list != "font=TkFixedFont" {
		t.Errorf("expected text to be omitted, have %q", list)
	}
	cfg := &Config{
		Extend: true,
		FontName: func(f any) string {
			return strings.ToLower(f.(string))
		},
	}
	list, err = Encode(options, Font{}, CaseNone, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if list != `font=tkfixedfont text="Hello World"` {
		t.Errorf("unexpected list %q", list)
	}
}

func TestEncodeRejected(t *testing.T) {
	Rejected["forbidden"] = struct{}{}
	defer delete(Rejected, "forbidden")
	//
	if _, err := Encode(Options{"forbidden": 1}, Font{}, CaseNone, nil); !errors.Is(err, ErrUnrecognizedAttribute) {
		t.Errorf("expected ErrUnrecognizedAttribute, got %v", err)
	}
	if _, err := Parse("fg=red forbidden"); !errors.Is(err, ErrUnrecognizedAttribute) {
		t.Errorf("expected ErrUnrecognizedAttribute, got %v", err)
	}
}

func TestParseKeyMode(t *testing.T) {
	for in, out := range map[string]KeyMode{"": KeyModePlain, "a": KeyModeAlias,
		"alias": KeyModeAlias, "Option": KeyModeOption, "x": KeyModePlain} {
		if got := ParseKeyMode(in); got != out {
			t.Errorf("ParseKeyMode(%q) = %v, expected %v", in, got, out)
		}
	}
}

func TestEncodeExtensionKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	options := Options{"cursor": "hand2", "customkey": "v"}
	list, err := Encode(options, Font{}, CaseNone, &Config{Mode: KeyModeAlias})
	if err != nil {
		t.Fatal(err)
	}
	if list != "cur=hand2 customkey=v" {
		t.Errorf("list = %q, expected %q", list, "cur=hand2 customkey=v")
	}
	a, err := Parse(list)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Options, options) {
		t.Errorf("options = %v, expected %v", a.Options, options)
	}
}

func TestEncodeQuotedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	for _, text := range []string{`it's a "x"`, `"x" it's`, `a "b" 'c'`} {
		list, err := Encode(Options{"text": text}, Font{}, CaseNone, &Config{Extend: true})
		if err != nil {
			t.Fatal(err)
		}
		a, err := Parse(list)
		if err != nil {
			t.Errorf("cannot parse encoded list %s: %v", list, err)
			continue
		}
		if a.Options["text"] != text {
			t.Errorf("text = %q, expected %q", a.Options["text"], text)
		}
	}
}
