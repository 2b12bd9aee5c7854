package dtb

import (
	"bytes"

	"github.com/MrMan314/dtbkit/internal/buf"
	"github.com/MrMan314/dtbkit/internal/format"
)

// NamePropKey is the property every non-root node carries; its payload is
// the node's NUL-terminated name, matched by FindNode.
const NamePropKey = "name"

// Prop is a named byte payload attached to a Node.
//
// For a regular property, Data is the literal wire payload and its length is
// authoritative. A zero-length marker property has nil Data. For a
// placeholder property, Data holds the comma-separated token string that is
// resolved to a concrete length at emission time.
type Prop struct {
	Name        string
	Data        []byte
	Placeholder bool
}

// Len returns the declared payload length in bytes. For placeholders this is
// the token string length, not the resolved emission length.
func (p *Prop) Len() int { return len(p.Data) }

// U32 decodes the payload as a little-endian uint32. Returns 0 when the
// payload is shorter than 4 bytes.
func (p *Prop) U32() uint32 { return buf.U32LE(p.Data) }

// U64 decodes the payload as a little-endian uint64. Returns 0 when the
// payload is shorter than 8 bytes.
func (p *Prop) U64() uint64 { return buf.U64LE(p.Data) }

// StringValue decodes the payload as text, stopping at the first NUL.
func (p *Prop) StringValue() string {
	if i := bytes.IndexByte(p.Data, 0); i >= 0 {
		return string(p.Data[:i])
	}
	return string(p.Data)
}

// SetProp inserts or replaces the named property with a copy of data.
// A nil data creates a zero-length marker property. Replacement keeps the
// property's position in the node's iteration order.
//
// The name must be shorter than the 32-byte wire name field, and a non-nil
// payload must be non-empty; violating either is a programming error and
// panics.
func (n *Node) SetProp(name string, data []byte) *Prop {
	checkPropName(name)
	if data != nil && len(data) == 0 {
		panic("dtb: zero-length payload must be nil (use SetPropNull)")
	}
	var owned []byte
	if data != nil {
		owned = append([]byte(nil), data...)
	}
	return n.insertProp(&Prop{Name: name, Data: owned})
}

// SetPropNull inserts or replaces a zero-length marker property.
func (n *Node) SetPropNull(name string) *Prop {
	checkPropName(name)
	return n.insertProp(&Prop{Name: name})
}

// SetPropU32 inserts or replaces a 4-byte little-endian property.
func (n *Node) SetPropU32(name string, val uint32) *Prop {
	return n.SetProp(name, buf.AppendU32LE(nil, val))
}

// SetPropU64 inserts or replaces an 8-byte little-endian property.
func (n *Node) SetPropU64(name string, val uint64) *Prop {
	return n.SetProp(name, buf.AppendU64LE(nil, val))
}

// SetPropAddr inserts or replaces an address property. Device tree
// addresses are 64-bit on every supported machine.
func (n *Node) SetPropAddr(name string, val uint64) *Prop {
	return n.SetPropU64(name, val)
}

// SetPropString inserts or replaces a NUL-terminated string property.
func (n *Node) SetPropString(name, val string) *Prop {
	data := make([]byte, len(val)+1)
	copy(data, val)
	return n.SetProp(name, data)
}

// SetPropStringN inserts or replaces a fixed-width string property. The
// value is truncated to width bytes or NUL-padded up to it; a value of
// exactly width bytes carries no terminator, matching the wire convention
// for fixed string fields. width must be positive.
func (n *Node) SetPropStringN(name, val string, width int) *Prop {
	data := make([]byte, width)
	copy(data, val)
	return n.SetProp(name, data)
}

// SetPlaceholder inserts or replaces a placeholder property whose payload is
// the given non-empty token string, e.g. "syscfg/MACA/6,macaddr/wifi".
func (n *Node) SetPlaceholder(name, tokens string) *Prop {
	p := n.SetProp(name, []byte(tokens))
	p.Placeholder = true
	return p
}

// FindProp returns the named property, or nil when absent.
func (n *Node) FindProp(name string) *Prop {
	i, ok := n.byName[name]
	if !ok {
		return nil
	}
	return n.props[i]
}

// RemoveProp removes the named property, reporting whether one existed.
func (n *Node) RemoveProp(name string) bool {
	i, ok := n.byName[name]
	if !ok {
		return false
	}
	n.props = append(n.props[:i], n.props[i+1:]...)
	delete(n.byName, name)
	for other, j := range n.byName {
		if j > i {
			n.byName[other] = j - 1
		}
	}
	return true
}

// Props returns the node's properties in iteration order. The order is
// stable for an unmodified node, which is what keeps the size and serialize
// passes of one emission in agreement. The slice is shared; do not modify.
func (n *Node) Props() []*Prop { return n.props }

// PropCount returns the number of properties on the node. Placeholders that
// would resolve to zero still count here; only emission drops them.
func (n *Node) PropCount() int { return len(n.props) }

// insertProp adds p, replacing any property with the same name in place.
func (n *Node) insertProp(p *Prop) *Prop {
	if i, ok := n.byName[p.Name]; ok {
		n.props[i] = p
		return p
	}
	if n.byName == nil {
		n.byName = make(map[string]int)
	}
	n.byName[p.Name] = len(n.props)
	n.props = append(n.props, p)
	return p
}

func checkPropName(name string) {
	if len(name) >= format.PropNameLen {
		panic("dtb: property name too long: " + name)
	}
}
