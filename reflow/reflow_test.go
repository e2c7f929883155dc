package reflow

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ttext/chunk"
)

func TestWrapIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	for _, text := range []string{"", "plain", "one <t b>bold</t> text", "<t size=x/>"} {
		for _, width := range []int{0, -1} {
			got, err := Wrap(text, width)
			if err != nil || got != text {
				t.Errorf("Wrap(%q, %d) = %q, %v; expected identity", text, width, got, err)
			}
		}
	}
	if got, _ := WrapWithConfig("a b", nil); got != "a b" {
		t.Errorf("expected nil config to disable wrapping")
	}
}

func TestWrapPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	cases := []struct {
		in    string
		width int
		out   string
	}{
		{"The quick brown fox jumps over the lazy dog", 10, "The quick\nbrown fox\njumps over\nthe lazy\ndog"},
		{"aa bb\n", 2, "aa\nbb\n"},
		{"aa   bb", 3, "aa\nbb"},
		{"short\nlines here", 20, "short\nlines here"},
		{"unbreakablewordislong x", 5, "unbreakablewordislong\nx"},
		{"  indented text", 10, "  indented\ntext"},
		{"日本 語", 4, "日本\n語"},
	}
	for _, c := range cases {
		got, err := Wrap(c.in, c.width)
		if err != nil {
			t.Errorf("Wrap(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.out {
			t.Errorf("Wrap(%q, %d) = %q, expected %q", c.in, c.width, got, c.out)
		}
	}
}

func TestWrapKeepsTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	cases := []struct {
		in    string
		width int
		out   string
	}{
		{"one <t b>two three</t> four", 9, "one <t b>two\nthree</t>\nfour"},
		{"aaa <t b> bbb</t>", 3, "aaa\n<t b>bbb</t>"},
		{"<TAG fg=red>short</TAG>", 40, "<TAG fg=red>short</TAG>"},
		{"<t i>a b c d</t>", 3, "<t i>a b\nc d</t>"},
		{`x <t text="y z" bold/>`, 3, "x <t bold=1>y\nz</t>"},
	}
	for _, c := range cases {
		got, err := Wrap(c.in, c.width)
		if err != nil {
			t.Errorf("Wrap(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.out {
			t.Errorf("Wrap(%q, %d) = %q, expected %q", c.in, c.width, got, c.out)
		}
	}
}

func TestWrapPreservesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	text := "Lorem <t fg=red>ipsum dolor</t> sit amet, <t b>consectetur adipiscing</t> elit, " +
		"sed do <t i>eiusmod</t> tempor\nincididunt ut labore et dolore magna aliqua."
	for width := 1; width < 40; width++ {
		wrapped, err := Wrap(text, width)
		if err != nil {
			t.Fatal(err)
		}
		before, after := chunk.StripTags(text), chunk.StripTags(wrapped)
		if !reflect.DeepEqual(strings.Fields(before), strings.Fields(after)) {
			t.Fatalf("width %d: words differ:\n%q\n%q", width, before, after)
		}
		if strings.Count(after, " ")+strings.Count(after, "\n") != strings.Count(before, " ")+strings.Count(before, "\n") {
			t.Errorf("width %d: expected each break to replace a single space:\n%q", width, after)
		}
		chunks, err := chunk.Parse(wrapped)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range chunks {
			if strings.Contains(c.Text, "ipsum") && c.Attrs != "fg=red" {
				t.Errorf("width %d: 'ipsum' lost its attributes: %+v", width, c)
			}
		}
	}
}

func TestWrapError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttext")
	defer teardown()
	//
	if _, err := Wrap("a <t size=x text=y/>", 5); err == nil {
		t.Errorf("expected invalid self-closing tag to fail")
	}
}

func TestLockstep(t *testing.T) {
	breaks, err := lockstep("ab  cd ef", "ab\ncd\nef")
	if err != nil {
		t.Fatal(err)
	}
	expected := []lineBreak{{pos: 2, len: 2}, {pos: 6, len: 1}}
	if !reflect.DeepEqual(breaks, expected) {
		t.Errorf("breaks = %v, expected %v", breaks, expected)
	}
	if _, err = lockstep("ab cd", "ab\ncx"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestAssign(t *testing.T) {
	// chunks "a ", "", " b c"
	spans := []span{{0, 2}, {2, 0}, {2, 4}}
	edits := assign([]lineBreak{{pos: 1, len: 2}, {pos: 4, len: 1}}, spans)
	expected := []edit{
		{chunk: 0, offset: 1, drop: 1, insert: "\n"},
		{chunk: 2, offset: 0, drop: 1},
		{chunk: 2, offset: 2, drop: 1, insert: "\n"},
	}
	if !reflect.DeepEqual(edits, expected) {
		t.Errorf("edits = %+v, expected %+v", edits, expected)
	}
}

func TestWidthFor(t *testing.T) {
	for in, out := range map[int]int{120: 110, 50: 45, 20: 20, 5: 10} {
		if got := widthFor(in); got != out {
			t.Errorf("widthFor(%d) = %d, expected %d", in, got, out)
		}
	}
}
