package inline

import (
	"io"
	"strings"

	"github.com/npillmayer/ttext"
	"github.com/npillmayer/ttext/attrs"
	"github.com/npillmayer/ttext/chunk"
	"golang.org/x/net/html"
)

// run is a piece of text with uniform appearance.
type run struct {
	text  string
	style Style
	color string
}

// InnerText creates chunks of tagged text for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore the resulting chunks reflect inline elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// only. Clients should provide a paragraph-like element.
func InnerText(n *html.Node) ([]chunk.Chunk, error) {
	if n == nil {
		return nil, ttext.ErrIllegalArguments
	}
	var runs []run
	collectText(n, run{}, &runs)
	return chunksOf(runs)
}

func collectText(n *html.Node, r run, runs *[]run) {
	if n.Type == html.ElementNode {
		tracer().Debugf("inline text: collect text of <%s>", n.Data)
		r.style = r.style.Add(StyleFromHTMLName(n.Data))
		if strings.EqualFold(n.Data, "font") {
			for _, a := range n.Attr {
				if strings.EqualFold(a.Key, "color") {
					r.color = a.Val
				}
			}
		}
	} else if n.Type == html.TextNode {
		tracer().Debugf("inline text = %q (%v)", n.Data, r.style)
		r.text = n.Data
		if k := len(*runs) - 1; k >= 0 && (*runs)[k].style == r.style && (*runs)[k].color == r.color {
			(*runs)[k].text += r.text
		} else {
			*runs = append(*runs, r)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, r, runs)
	}
}

// chunksOf converts runs to chunks, encoding styles as attribute lists.
func chunksOf(runs []run) ([]chunk.Chunk, error) {
	chunks := make([]chunk.Chunk, 0, len(runs))
	for _, r := range runs {
		if r.text == "" {
			continue
		}
		a := attrs.Attrs{Options: attrs.Options{}, Font: r.style.Font()}
		if r.color != "" {
			a.Options["foreground"] = r.color
		}
		list, err := a.Encode(&attrs.Config{Mode: attrs.KeyModeAlias})
		if err != nil {
			return nil, err
		}
		c := chunk.Chunk{Text: r.text}
		if list != "" {
			c.Tag, c.Attrs = "t", list
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// TaggedTextFromHTML creates tagged text from the textual content of an HTML
// fragment. The HTML fragment should reflect the content of a paragraph-like
// element.
//
//	TaggedTextFromHTML(strings.NewReader(`<p>My <b>first</b> paragraph.</p>`))
//
// yields
//
//	My <t b=1>first</t> paragraph.
func TaggedTextFromHTML(input io.Reader) (string, error) {
	if input == nil {
		return "", ttext.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var runs []run
	for _, n := range nodes {
		collectText(n, run{}, &runs)
	}
	chunks, err := chunksOf(runs)
	if err != nil {
		return "", err
	}
	return chunk.Join(chunks), nil
}
