package dtb

// Node is one vertex of a device tree. It owns its property set and its
// children; child order is meaningful and preserved across deserialize,
// mutate, and serialize cycles.
//
// Node has no internal synchronization. Callers needing concurrent access
// must serialize it externally.
type Node struct {
	// Children in insertion order. The slice may be reordered by the
	// caller; the wire format emits children exactly in this order.
	Children []*Node

	props  []*Prop
	byName map[string]int
}

// NewRoot creates an empty, nameless root node. Only the root may lack a
// name property.
func NewRoot() *Node {
	return &Node{}
}

// Name returns the node's name property as a string, or "" for the root.
func (n *Node) Name() string {
	p := n.FindProp(NamePropKey)
	if p == nil || p.Placeholder {
		return ""
	}
	return p.StringValue()
}

// AddChild creates a child node with the given name and appends it to
// n.Children. The child automatically receives a "name" string property.
// Returns nil when name is empty or when n already has a child of that
// name; the tree never holds two siblings with the same name via this path.
func (n *Node) AddChild(name string) *Node {
	if name == "" {
		return nil
	}
	if n.childNamed(name) != nil {
		return nil
	}
	child := &Node{}
	child.SetPropString(NamePropKey, name)
	n.Children = append(n.Children, child)
	return child
}

// RemoveChild removes child and its whole subtree from n. Passing a node
// that is not actually a child of n is a programming error and panics.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
	panic("dtb: node is not a child of this parent")
}

// RemoveChildNamed removes the child with the given name, reporting whether
// one existed.
func (n *Node) RemoveChildNamed(name string) bool {
	child := n.childNamed(name)
	if child == nil {
		return false
	}
	n.RemoveChild(child)
	return true
}

// childNamed returns the first child whose name property equals name.
func (n *Node) childNamed(name string) *Node {
	for _, child := range n.Children {
		p := child.FindProp(NamePropKey)
		if p == nil || p.Placeholder {
			continue
		}
		if p.StringValue() == name {
			return child
		}
	}
	return nil
}
