package dtb

import (
	"github.com/MrMan314/dtbkit/internal/buf"
	"github.com/MrMan314/dtbkit/internal/format"
)

// Serialize writes n and its whole subtree into b, which the caller sizes
// via SerializedSize, and returns the number of bytes written. A regular
// property is emitted with its literal payload and zero padding to the next
// 4-byte boundary. A placeholder property is resolved first: a zero result
// drops the record (the emitted property count reflects the drop), any
// other result reserves that many aligned bytes without touching them, so
// the buffer's pre-existing contents stand in as the reserved region.
// Callers are expected to hand in a zero-filled buffer.
//
// Returns ErrShortBuffer when b cannot hold the tree; b's contents are then
// unspecified.
func (n *Node) Serialize(b []byte) (int, error) {
	return n.serializeAt(b, 0)
}

// Marshal serializes n into a fresh, exactly sized buffer. The size and
// serialize passes share their per-property arithmetic, so a disagreement
// here is impossible by construction and treated as a bug.
func (n *Node) Marshal() []byte {
	b := make([]byte, n.SerializedSize())
	written, err := n.Serialize(b)
	if err != nil || written != len(b) {
		panic("dtb: serializer disagreed with size calculator")
	}
	return b
}

// serializeAt writes n's record at b[off:] and returns the offset one past
// the subtree's last byte.
func (n *Node) serializeAt(b []byte, off int) (int, error) {
	if !buf.Has(b, off, format.NodeHeaderSize) {
		return off, ErrShortBuffer
	}

	// The property count is patched after the loop: placeholders that
	// resolve to zero are dropped and must not be counted on the wire.
	countOff := off
	off += 4
	buf.PutU32LE(b[off:], uint32(len(n.Children)))
	off += 4

	emitted := uint32(0)
	for _, p := range n.props {
		length, skip := resolvedLength(p)
		if skip {
			continue
		}

		aligned := format.Align4(length)
		if !buf.Has(b, off, format.PropHeaderSize+aligned) {
			return off, ErrShortBuffer
		}

		writeNameField(b[off:off+format.PropNameLen], p.Name)
		off += format.PropNameLen

		// The placeholder flag never survives emission; the length
		// field holds the resolved length with bit 31 clear.
		buf.PutU32LE(b[off:], uint32(length))
		off += format.LengthFieldSize

		if !p.Placeholder {
			copy(b[off:off+length], p.Data)
			zero(b[off+length : off+aligned])
		}
		off += aligned
		emitted++
	}
	buf.PutU32LE(b[countOff:], emitted)

	for _, child := range n.Children {
		var err error
		off, err = child.serializeAt(b, off)
		if err != nil {
			return off, err
		}
	}
	return off, nil
}

// writeNameField fills the fixed 32-byte name field: the name bytes,
// truncated if necessary, then NUL padding.
func writeNameField(field []byte, name string) {
	copied := copy(field, name)
	zero(field[copied:])
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
