package dtb

import (
	"fmt"

	"github.com/MrMan314/dtbkit/internal/buf"
	"github.com/MrMan314/dtbkit/internal/format"
)

// Deserialize reads a serialized blob back into a tree. The blob is not
// retained: payloads are copied, so the caller may reuse the buffer.
//
// A malformed blob (truncated record, impossible counts, nesting beyond the
// supported depth) fails the whole deserialization; no partial tree is ever
// returned. Trailing bytes after the root's subtree are ignored.
func Deserialize(blob []byte) (*Node, error) {
	d := &decoder{data: blob}
	root, err := d.node(0)
	if err != nil {
		return nil, fmt.Errorf("dtb: deserialize: %w", err)
	}
	return root, nil
}

type decoder struct {
	data []byte
	off  int
}

func (d *decoder) node(depth int) (*Node, error) {
	if depth > format.MaxDepth {
		return nil, format.ErrTooDeep
	}

	propCount, err := d.u32()
	if err != nil {
		return nil, err
	}
	childCount, err := d.u32()
	if err != nil {
		return nil, err
	}

	// Cheap plausibility bound before looping: every record needs at
	// least its fixed header, so counts the buffer cannot possibly hold
	// are rejected up front rather than iterated against.
	remaining := int64(len(d.data) - d.off)
	if int64(propCount)*int64(format.PropHeaderSize) > remaining {
		return nil, format.ErrTruncated
	}
	if int64(childCount)*int64(format.NodeHeaderSize) > remaining {
		return nil, format.ErrTruncated
	}

	n := &Node{}
	for i := uint32(0); i < propCount; i++ {
		p, err := d.prop()
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
		// An empty name means a scrubbed record: the cursor had to
		// advance over it, but it is not part of the node.
		if p.Name == "" {
			continue
		}
		n.insertProp(p)
	}

	for i := uint32(0); i < childCount; i++ {
		child, err := d.node(depth + 1)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func (d *decoder) prop() (*Prop, error) {
	field, ok := buf.Slice(d.data, d.off, format.PropNameLen)
	if !ok {
		return nil, format.ErrTruncated
	}
	d.off += format.PropNameLen
	name := nameFromField(field)

	lengthField, err := d.u32()
	if err != nil {
		return nil, err
	}

	p := &Prop{
		Name:        name,
		Placeholder: lengthField&format.PlaceholderFlag != 0,
	}
	length := int(lengthField & format.LengthMask)
	if length != 0 {
		payload, ok := buf.Slice(d.data, d.off, length)
		if !ok {
			return nil, format.ErrTruncated
		}
		p.Data = append([]byte(nil), payload...)
		// The alignment padding is skipped, not stored. At the very
		// end of a blob the padding itself may be absent; that is
		// fine as long as nothing follows.
		d.off += format.Align4(length)
	}
	return p, nil
}

func (d *decoder) u32() (uint32, error) {
	field, ok := buf.Slice(d.data, d.off, 4)
	if !ok {
		return 0, format.ErrTruncated
	}
	d.off += 4
	return buf.U32LE(field), nil
}

// nameFromField decodes the fixed name field: the bytes up to the first
// NUL, or all 32 bytes when no NUL appears.
func nameFromField(field []byte) string {
	for i, c := range field {
		if c == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}
