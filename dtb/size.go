package dtb

import "github.com/MrMan314/dtbkit/internal/format"

// SerializedSize returns the exact number of bytes Serialize will write for
// n and its whole subtree, including placeholder expansion. It is a pure
// read-only traversal; the tree must not be mutated between this call and
// the matching Serialize call.
func (n *Node) SerializedSize() int {
	size := format.NodeHeaderSize
	for _, p := range n.props {
		size += propWireSize(p)
	}
	for _, child := range n.Children {
		size += child.SerializedSize()
	}
	return size
}

// propWireSize returns the emitted size of one property record: the name
// and length fields plus the 4-byte-aligned payload, or 0 for a placeholder
// that resolves to nothing. Serialize consumes exactly this many bytes for
// the same property.
func propWireSize(p *Prop) int {
	length, drop := resolvedLength(p)
	if drop {
		return 0
	}
	return format.PropHeaderSize + format.Align4(length)
}
