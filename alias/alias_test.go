package alias

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAliasSymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	for _, k := range Keys() {
		name := k.String()
		if got := Unalias(Alias(name)); got != name {
			t.Errorf("unalias(alias(%q)) = %q", name, got)
		}
	}
}

func TestAliasIdempotentOnUnknown(t *testing.T) {
	for _, name := range []string{"bg", "fg", "nonsense", "", "xyz"} {
		if got := Alias(name); got != name {
			t.Errorf("expected Alias(%q) to be unchanged, got %q", name, got)
		}
	}
	for _, name := range []string{"background", "nonsense", ""} {
		if got := Unalias(name); got != name {
			t.Errorf("expected Unalias(%q) to be unchanged, got %q", name, got)
		}
	}
}

func TestWellKnownAliases(t *testing.T) {
	tests := []struct {
		short, long string
	}{
		{"bg", "background"},
		{"fg", "foreground"},
		{"bd", "borderwidth"},
		{"u", "funderline"},
		{"o", "foverstrike"},
		{"ul", "underline"},
		{"cpd", "compound"},
		{"b", "bold"},
		{"i", "italic"},
		{"cap", "capitalize"},
	}
	for _, tt := range tests {
		if got := Unalias(tt.short); got != tt.long {
			t.Errorf("Unalias(%q) = %q, want %q", tt.short, got, tt.long)
		}
		if got := Alias(tt.long); got != tt.short {
			t.Errorf("Alias(%q) = %q, want %q", tt.long, got, tt.short)
		}
	}
}

func TestLookup(t *testing.T) {
	if k, ok := Lookup("BG"); !ok || k != Background {
		t.Errorf("expected Lookup(BG) to find background, got %v/%v", k, ok)
	}
	if k, ok := Lookup("SelectForeground"); !ok || k != SelectForeground {
		t.Errorf("expected Lookup(SelectForeground) to find it, got %v/%v", k, ok)
	}
	if k, ok := Lookup("back"); ok || k != Unknown {
		t.Errorf("prefixes are not part of the registry, got %v", k)
	}
}

func TestTableIsCopy(t *testing.T) {
	m := Table()
	if m["bd"] != "borderwidth" {
		t.Fatalf("expected bd in table, got %q", m["bd"])
	}
	m["bd"] = "changed"
	if Unalias("bd") != "borderwidth" {
		t.Errorf("modifying the table copy must not change the registry")
	}
	if len(Keys()) < 60 {
		t.Errorf("vocabulary seems incomplete: %d keys", len(Keys()))
	}
}
