// Package treesitter exposes tree-sitter parse trees as selector.Node trees.
// Nodes are wrapped together with the source bytes so the text property can be
// resolved; the fixed Prop surface mirrors tree-sitter's scalar node fields.
package treesitter

import (
	"github.com/niklasfasching/treecss/selector"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Node struct {
	TS     *sitter.Node
	Source []byte
}

// Wrap adapts a tree-sitter node (usually tree.RootNode()) and its source to
// the selector engine. The underlying tree must outlive the returned node.
func Wrap(n *sitter.Node, source []byte) selector.Node {
	if n == nil {
		return nil
	}
	return &Node{n, source}
}

func (n *Node) Kind() string         { return n.TS.Kind() }
func (n *Node) ChildCount() int      { return int(n.TS.ChildCount()) }
func (n *Node) NamedChildCount() int { return int(n.TS.NamedChildCount()) }
func (n *Node) Text() string         { return n.TS.Utf8Text(n.Source) }

func (n *Node) Child(i int) selector.Node {
	if i < 0 || i >= int(n.TS.ChildCount()) {
		return nil
	}
	return n.wrap(n.TS.Child(uint(i)))
}

func (n *Node) NamedChild(i int) selector.Node {
	if i < 0 || i >= int(n.TS.NamedChildCount()) {
		return nil
	}
	return n.wrap(n.TS.NamedChild(uint(i)))
}

// FirstChildForIndex returns the first child whose span ends after byte
// offset i, like tree-sitter's firstChildForIndex.
func (n *Node) FirstChildForIndex(i int) selector.Node {
	for j := uint(0); j < n.TS.ChildCount(); j++ {
		if c := n.TS.Child(j); c != nil && int(c.EndByte()) > i {
			return n.wrap(c)
		}
	}
	return nil
}

func (n *Node) FirstNamedChildForIndex(i int) selector.Node {
	for j := uint(0); j < n.TS.NamedChildCount(); j++ {
		if c := n.TS.NamedChild(j); c != nil && int(c.EndByte()) > i {
			return n.wrap(c)
		}
	}
	return nil
}

func (n *Node) Parent() selector.Node           { return n.wrap(n.TS.Parent()) }
func (n *Node) NextSibling() selector.Node      { return n.wrap(n.TS.NextSibling()) }
func (n *Node) PrevSibling() selector.Node      { return n.wrap(n.TS.PrevSibling()) }
func (n *Node) NextNamedSibling() selector.Node { return n.wrap(n.TS.NextNamedSibling()) }
func (n *Node) PrevNamedSibling() selector.Node { return n.wrap(n.TS.PrevNamedSibling()) }

func (n *Node) Prop(name string) (any, bool) {
	switch name {
	case "type":
		return n.TS.Kind(), true
	case "text":
		return n.Text(), true
	case "childCount":
		return int(n.TS.ChildCount()), true
	case "namedChildCount":
		return int(n.TS.NamedChildCount()), true
	case "startIndex":
		return int(n.TS.StartByte()), true
	case "endIndex":
		return int(n.TS.EndByte()), true
	default:
		return nil, false
	}
}

func (n *Node) wrap(ts *sitter.Node) selector.Node { return Wrap(ts, n.Source) }
