// Package soup exposes HTML documents as selector.Node trees: element tag
// names are the node kinds, element nodes are the named children, and Prop
// resolves HTML attributes plus the text/childCount pseudo properties.
package soup

import (
	"context"
	"io"

	"github.com/niklasfasching/treecss/selector"
	"golang.org/x/net/html"
)

type Node struct {
	HTML *html.Node
}

type Nodes []*Node

func Parse(r io.Reader) (*Node, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Node{n}, nil
}

func MustParse(r io.Reader) *Node {
	n, err := Parse(r)
	if err != nil {
		panic(err)
	}
	return n
}

// Select runs a token sequence against n and returns nodes and/or extracted
// scalars, whatever the selector produces.
func (n *Node) Select(ctx context.Context, tokens ...selector.Token) ([]any, error) {
	return selector.All(ctx, tokens, n)
}

// All runs a token sequence against n and keeps the node results.
func (n *Node) All(ctx context.Context, tokens ...selector.Token) (Nodes, error) {
	vs, err := n.Select(ctx, tokens...)
	if err != nil {
		return nil, err
	}
	ns := Nodes{}
	for _, v := range vs {
		if n, ok := v.(*Node); ok {
			ns = append(ns, n)
		}
	}
	return ns, nil
}

// First returns the first node result or nil.
func (n *Node) First(ctx context.Context, tokens ...selector.Token) (*Node, error) {
	ns, err := n.All(ctx, tokens...)
	if err != nil || len(ns) == 0 {
		return nil, err
	}
	return ns[0], nil
}

func (n *Node) Kind() string {
	switch n.HTML.Type {
	case html.ElementNode:
		return n.HTML.Data
	case html.TextNode:
		return "text"
	case html.CommentNode:
		return "comment"
	case html.DocumentNode:
		return "document"
	case html.DoctypeNode:
		return "doctype"
	default:
		return ""
	}
}

func (n *Node) ChildCount() int {
	count := 0
	for c := n.HTML.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

func (n *Node) NamedChildCount() int {
	count := 0
	for c := n.HTML.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

func (n *Node) Child(i int) selector.Node {
	for c := n.HTML.FirstChild; c != nil && i >= 0; c = c.NextSibling {
		if i == 0 {
			return wrap(c)
		}
		i--
	}
	return nil
}

func (n *Node) NamedChild(i int) selector.Node {
	for c := n.HTML.FirstChild; c != nil && i >= 0; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if i == 0 {
			return wrap(c)
		}
		i--
	}
	return nil
}

// HTML nodes carry no source offsets, so the ForIndex navigations fall back to
// child position.
func (n *Node) FirstChildForIndex(i int) selector.Node      { return n.Child(max(i, 0)) }
func (n *Node) FirstNamedChildForIndex(i int) selector.Node { return n.NamedChild(max(i, 0)) }

func (n *Node) Parent() selector.Node      { return wrap(n.HTML.Parent) }
func (n *Node) NextSibling() selector.Node { return wrap(n.HTML.NextSibling) }
func (n *Node) PrevSibling() selector.Node { return wrap(n.HTML.PrevSibling) }

func (n *Node) NextNamedSibling() selector.Node {
	for c := n.HTML.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return wrap(c)
		}
	}
	return nil
}

func (n *Node) PrevNamedSibling() selector.Node {
	for c := n.HTML.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return wrap(c)
		}
	}
	return nil
}

func (n *Node) Prop(name string) (any, bool) {
	switch name {
	case "text":
		return n.Text(), true
	case "childCount":
		return n.ChildCount(), true
	case "namedChildCount":
		return n.NamedChildCount(), true
	}
	for _, a := range n.HTML.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return nil, false
}

func wrap(n *html.Node) selector.Node {
	if n == nil {
		return nil
	}
	return &Node{n}
}
