package selector

// descendAll collects every node of n's subtree (n included) that passes pred.
// Children are visited before their parent, left to right, so the result lists
// descendants before ancestors.
func descendAll(n Node, pred func(Node) bool) []Node {
	out := []Node{}
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil {
			out = append(out, descendAll(c, pred)...)
		}
	}
	if pred(n) {
		out = append(out, n)
	}
	return out
}

// descendChildren walks each direct child of n through f, left to right,
// keeping the items of the walks that succeed. It does not recurse.
func descendChildren(n Node, f func(Node) result) []any {
	out := []any{}
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		if r := f(c); r.ok {
			out = append(out, r.items...)
		}
	}
	return out
}
