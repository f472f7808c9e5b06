package selector

// testNode is a minimal in-memory Node for engine tests; adapters are tested
// against real trees in their own packages.
type testNode struct {
	kind     string
	props    map[string]any
	children []*testNode
	parent   *testNode
	named    bool
}

func tn(kind string, children ...*testNode) *testNode {
	n := &testNode{kind: kind, children: children, named: true}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func anon(kind string) *testNode {
	return &testNode{kind: kind, named: false}
}

func (n *testNode) with(props map[string]any) *testNode {
	n.props = props
	return n
}

func (n *testNode) Kind() string    { return n.kind }
func (n *testNode) ChildCount() int { return len(n.children) }

func (n *testNode) NamedChildCount() int {
	count := 0
	for _, c := range n.children {
		if c.named {
			count++
		}
	}
	return count
}

func (n *testNode) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *testNode) NamedChild(i int) Node {
	for _, c := range n.children {
		if !c.named {
			continue
		}
		if i == 0 {
			return c
		}
		i--
	}
	return nil
}

// test trees have no source offsets; the ForIndex navigations use the child
// position instead.
func (n *testNode) FirstChildForIndex(i int) Node      { return n.Child(max(i, 0)) }
func (n *testNode) FirstNamedChildForIndex(i int) Node { return n.NamedChild(max(i, 0)) }

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) NextSibling() Node { return n.sibling(1, false) }
func (n *testNode) PrevSibling() Node { return n.sibling(-1, false) }

func (n *testNode) NextNamedSibling() Node { return n.sibling(1, true) }
func (n *testNode) PrevNamedSibling() Node { return n.sibling(-1, true) }

func (n *testNode) sibling(step int, named bool) Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	i := 0
	for ; i < len(siblings); i++ {
		if siblings[i] == n {
			break
		}
	}
	for i += step; 0 <= i && i < len(siblings); i += step {
		if !named || siblings[i].named {
			return siblings[i]
		}
	}
	return nil
}

func (n *testNode) Prop(name string) (any, bool) {
	if v, ok := n.props[name]; ok {
		return v, true
	}
	if name == "childCount" {
		return len(n.children), true
	}
	return nil, false
}
