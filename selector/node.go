package selector

// Node is the capability set the engine requires of syntax tree nodes. Trees
// are produced elsewhere (see the treesitter and soup packages) and queried
// read-only. All node returning accessors must return nil when the target is
// absent or the index is out of range; Prop resolves the fixed set of scalar
// properties the tree exposes (string or number values) and fails closed for
// unknown names.
type Node interface {
	Kind() string
	ChildCount() int
	NamedChildCount() int
	Child(i int) Node
	NamedChild(i int) Node
	FirstChildForIndex(i int) Node
	FirstNamedChildForIndex(i int) Node
	Parent() Node
	NextSibling() Node
	PrevSibling() Node
	NextNamedSibling() Node
	PrevNamedSibling() Node
	Prop(name string) (any, bool)
}

// Navigations maps ID token names to navigation steps. Names outside the map
// fail the branch rather than the query.
var Navigations = map[string]func(Node) Node{
	"parent":               Node.Parent,
	"nextSibling":          Node.NextSibling,
	"previousSibling":      Node.PrevSibling,
	"nextNamedSibling":     Node.NextNamedSibling,
	"previousNamedSibling": Node.PrevNamedSibling,
	"firstChild":           func(n Node) Node { return n.Child(0) },
	"firstNamedChild":      func(n Node) Node { return n.NamedChild(0) },
	"lastChild":            func(n Node) Node { return n.Child(n.ChildCount() - 1) },
	"lastNamedChild":       func(n Node) Node { return n.NamedChild(n.NamedChildCount() - 1) },
}

// PseudoClasses maps pseudo class names to navigation functions of one integer
// argument. The set is closed; unregistered names fail the branch.
var PseudoClasses = map[string]func(Node, int) Node{
	"child":                   Node.Child,
	"namedChild":              Node.NamedChild,
	"firstChildForIndex":      Node.FirstChildForIndex,
	"firstNamedChildForIndex": Node.FirstNamedChildForIndex,
}
