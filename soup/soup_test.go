package soup

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/ericchiang/css"
	"github.com/niklasfasching/treecss/selector"
	"golang.org/x/exp/slices"
	"golang.org/x/net/html"
)

var document = `<!DOCTYPE html>
<html><head><title>t</title></head><body>
<div id="top"><p class="x y">one</p><p class="xy">two</p><span>three</span></div>
<ul>
  <li><a href="https://example.com/a" lang="en-US">first</a></li>
  <li><a href="http://example.com/b" lang="en">second</a></li>
  <li><a href="https://example.com/c" lang="english">third</a></li>
</ul>
</body></html>`

// selections must agree with two independent CSS engines; only the order
// differs (this engine yields descendants before ancestors, CSS engines yield
// document order), so results are compared sorted.
func TestCrossEngines(t *testing.T) {
	n := MustParse(strings.NewReader(document))
	for sel, tokens := range map[string][]selector.Token{
		"a":                  {selector.Class("a")},
		"p":                  {selector.Class("p")},
		"div p":              {selector.Class("div"), selector.Comb(" "), selector.Class("p")},
		"ul > li":            {selector.Class("ul"), selector.Comb(">"), selector.Class("li")},
		`a[href^="https"]`:   {selector.Class("a"), selector.Attr("href", "^=", "https", "s")},
		`a[href$="/b"]`:      {selector.Class("a"), selector.Attr("href", "$=", "/b", "s")},
		`a[href*="example"]`: {selector.Class("a"), selector.Attr("href", "*=", "example", "s")},
		`a[lang|="en"]`:      {selector.Class("a"), selector.Attr("lang", "|=", "en", "s")},
		`p[class~="x"]`:      {selector.Class("p"), selector.Attr("class", "~=", "x", "s")},
		"nosuchtag":          {selector.Class("nosuchtag")},
	} {
		ns, err := n.All(context.Background(), tokens...)
		if err != nil {
			t.Fatalf("%s: %s", sel, err)
		}
		actual := render(ns)
		expected := renderHTML(cascadia.MustCompile(sel).MatchAll(n.HTML))
		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("%s vs cascadia:\ngot:\n\t%#v\nexpected:\n\t%#v", sel, actual, expected)
		}
		expected = renderHTML(css.MustParse(sel).Select(n.HTML))
		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("%s vs ericchiang/css:\ngot:\n\t%#v\nexpected:\n\t%#v", sel, actual, expected)
		}
	}
}

func TestSelectScalars(t *testing.T) {
	n := MustParse(strings.NewReader(document))
	vs, err := n.Select(context.Background(), selector.Class("ul"), selector.Comb(" "),
		selector.Class("a"), selector.Element("text"))
	if err != nil {
		t.Fatal(err)
	}
	if expected := []any{"first", "second", "third"}; !reflect.DeepEqual(vs, expected) {
		t.Errorf("got %#v, expected %#v", vs, expected)
	}
	// attribute props resolve to attribute values
	vs, err = n.Select(context.Background(), selector.Class("a"),
		selector.Attr("lang", "=", "EN", ""), selector.Element("href"))
	if err != nil {
		t.Fatal(err)
	}
	if expected := []any{"http://example.com/b"}; !reflect.DeepEqual(vs, expected) {
		t.Errorf("got %#v, expected %#v", vs, expected)
	}
}

func TestNavigation(t *testing.T) {
	n := MustParse(strings.NewReader(document))
	p, err := n.First(context.Background(), selector.Class("p"),
		selector.Attr("class", "~=", "y", ""))
	if err != nil || p == nil {
		t.Fatalf("got %v (%v)", p, err)
	}
	if text := p.TrimmedText(); text != "one" {
		t.Errorf("got %q, expected one", text)
	}
	if next := p.NextNamedSibling(); next == nil || next.(*Node).Kind() != "p" {
		t.Errorf("expected a p sibling, got %#v", next)
	}
	if parent := p.Parent(); parent == nil || parent.(*Node).Attr("id") != "top" {
		t.Errorf("expected div#top as parent, got %#v", parent)
	}
	if p.PrevNamedSibling() != nil {
		t.Errorf("expected no previous element sibling")
	}
}

func render(ns Nodes) []string {
	out := []string{}
	for _, n := range ns {
		out = append(out, n.OuterHTML())
	}
	slices.Sort(out)
	return out
}

func renderHTML(ns []*html.Node) []string {
	out := []string{}
	for _, n := range ns {
		s := strings.Builder{}
		if err := html.Render(&s, n); err != nil {
			panic(err)
		}
		out = append(out, s.String())
	}
	slices.Sort(out)
	return out
}
