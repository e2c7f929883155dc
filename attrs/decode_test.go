package attrs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a, err := Parse("bg=white fg=blue bd=2 relief=solid underline=10")
	if err != nil {
		t.Fatal(err)
	}
	expected := Options{
		"background":  "white",
		"foreground":  "blue",
		"borderwidth": "2",
		"relief":      "solid",
		"underline":   10,
	}
	if !reflect.DeepEqual(a.Options, expected) {
		t.Errorf("options = %v, expected %v", a.Options, expected)
	}
	if !a.Font.IsEmpty() {
		t.Errorf("expected no font facets, have %+v", a.Font)
	}
	if a.Case != CaseNone {
		t.Errorf("expected no case, have %q", a.Case)
	}
}

func TestParseFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a, err := Parse(`family="Courier New" size=16 bold italic u o=0`)
	if err != nil {
		t.Fatal(err)
	}
	expected := Font{
		Family:     "Courier New",
		Size:       16,
		Weight:     WeightBold,
		Slant:      SlantItalic,
		Underline:  On,
		Overstrike: Off,
	}
	if a.Font != expected {
		t.Errorf("font = %+v, expected %+v", a.Font, expected)
	}
	if len(a.Options) != 0 {
		t.Errorf("expected font facets not to show up as options, have %v", a.Options)
	}
	a, err = Parse("bold=False weight=heavy slant=oblique italic=0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Font.Weight != "heavy" || a.Font.Slant != SlantRoman {
		t.Errorf("unexpected weight/slant: %+v", a.Font)
	}
}

func TestParseCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	cases := []struct {
		in  string
		out Case
	}{
		{"case=ti", CaseTitle},
		{"case=cap", CaseUpper},
		{"case=U", CaseUpper},
		{"case=l", CaseLower},
		{"case=sw", CaseSwapCase},
		{"lower", CaseLower},
		{"up", CaseUpper},
		{"capitalize", CaseUpper},
		{"title=1", CaseTitle},
		{"swapcase=0", CaseNone},
		{"case", CaseNone},
		{`case=""`, CaseUpper},
	}
	for _, c := range cases {
		a, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", c.in, err)
			continue
		}
		if a.Case != c.out {
			t.Errorf("Parse(%q): case = %q, expected %q", c.in, a.Case, c.out)
		}
	}
}

func TestParseSpecialValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a, err := Parse("bg=None fg=red family=None underline back=gray foo=bar baz")
	if err != nil {
		t.Fatal(err)
	}
	expected := Options{
		"foreground": "red",
		"underline":  -1,
		"background": "gray",
		"foo":        "bar",
		"baz":        nil,
	}
	if !reflect.DeepEqual(a.Options, expected) {
		t.Errorf("options = %v, expected %v", a.Options, expected)
	}
	if a.Font.Family != "" {
		t.Errorf("expected family=None to be skipped, have %q", a.Font.Family)
	}
}

func TestParseInvalidInteger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	for _, in := range []string{"size=big", "height=x", "width", "underline=first", "repeatdelay=1.5"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidInteger) {
			t.Errorf("Parse(%q): expected ErrInvalidInteger, got %v", in, err)
		}
	}
	if _, err := Parse(`fg="red`); !errors.Is(err, ErrImbalancedQuotes) {
		t.Errorf("expected ErrImbalancedQuotes, got %v", err)
	}
}

func TestDecodeAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	cfg := &Config{Auto: true}
	cases := []struct {
		in  string
		out Options
	}{
		{"image=pic", Options{"image": "pic", "compound": "center"}},
		{"image=pic compound=left", Options{"image": "pic", "compound": "left"}},
		{"compound=top bitmap=info", Options{"bitmap": "info", "compound": "top"}},
		{"relief=raised", Options{"relief": "raised", "borderwidth": "1"}},
		{"relief=raised bd=3", Options{"relief": "raised", "borderwidth": "3"}},
		{"relief=flat", Options{"relief": "flat"}},
	}
	for _, c := range cases {
		var a Attrs
		if err := a.Decode(c.in, cfg); err != nil {
			t.Errorf("Decode(%q) failed: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(a.Options, c.out) {
			t.Errorf("Decode(%q) = %v, expected %v", c.in, a.Options, c.out)
		}
	}
}

func TestDecodeOnTop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a := Attrs{
		Options: Options{"background": "white", "foreground": "black"},
		Font:    Font{Family: "Helvetica", Size: 10},
		Case:    CaseLower,
	}
	if err := a.Decode("fg=red size=12", nil); err != nil {
		t.Fatal(err)
	}
	if a.Options["background"] != "white" || a.Options["foreground"] != "red" {
		t.Errorf("unexpected options %v", a.Options)
	}
	if a.Font.Family != "Helvetica" || a.Font.Size != 12 || a.Case != CaseLower {
		t.Errorf("unexpected font or case: %+v, %q", a.Font, a.Case)
	}
	if err := a.Decode("fg=blue size=huge", nil); err == nil {
		t.Fatal("expected decode to fail")
	}
	if a.Options["foreground"] != "red" {
		t.Errorf("expected failed decode to leave attributes unchanged, have %v", a.Options)
	}
}

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	list := "fg=red size=12 case=up b funderline"
	cases := []struct {
		name  string
		value any
		found bool
	}{
		{"foreground", "red", true},
		{"fg", "red", true},
		{"sz", 12, true},
		{"case", "upper", true},
		{"weight", "bold", true},
		{"u", 1, true},
		{"bg", nil, false},
		{"italic", "", false},
	}
	for _, c := range cases {
		v, found, err := Lookup(list, c.name)
		if err != nil {
			t.Fatal(err)
		}
		if found != c.found || (found && v != c.value) {
			t.Errorf("Lookup(%q) = %v, %v; expected %v, %v", c.name, v, found, c.value, c.found)
		}
	}
}

func TestParseExtensionKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	a, err := Parse("cursor=hand2 customkey=v format=w FooBar=1 back=gray")
	if err != nil {
		t.Fatal(err)
	}
	expected := Options{
		"cursor":     "hand2",
		"customkey":  "v",
		"format":     "w",
		"foobar":     "1",
		"background": "gray",
	}
	if !reflect.DeepEqual(a.Options, expected) {
		t.Errorf("options = %v, expected %v", a.Options, expected)
	}
	if _, err = Parse("heightx=tall"); !errors.Is(err, ErrInvalidInteger) {
		t.Errorf("expected 'heightx' to be decoded as an integer option, got %v", err)
	}
}
