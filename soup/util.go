package soup

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var duplicateWhitespace = regexp.MustCompile(`\s+(\n)\s*|\s*(\n)\s+|(\s)\s+`)

func (n *Node) Text() string {
	out := strings.Builder{}
	appendText(&out, n.HTML)
	return out.String()
}

func (n *Node) TrimmedText() string {
	return duplicateWhitespace.ReplaceAllString(strings.TrimSpace(n.Text()), "$1")
}

func (n *Node) Attr(name string) string {
	for _, a := range n.HTML.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func (n *Node) OuterHTML() string {
	if n == nil {
		return ""
	}
	out := strings.Builder{}
	if err := html.Render(&out, n.HTML); err != nil {
		panic(fmt.Sprintf("could not render html: %s", err))
	}
	return out.String()
}

func appendText(out *strings.Builder, n *html.Node) {
	switch {
	case n == nil || n.Type == html.CommentNode:
		return
	case n.Type == html.TextNode:
		out.WriteString(n.Data)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendText(out, c)
		}
	}
}
