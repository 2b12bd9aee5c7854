package dtb_test

import (
	"encoding/binary"
	"testing"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/stretchr/testify/require"
)

// appendU32 appends a little-endian uint32 to a hand-built blob.
func appendU32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// appendProp appends a property record with the given raw length field.
func appendProp(b []byte, name string, lengthField uint32, payload []byte) []byte {
	field := make([]byte, 32)
	copy(field, name)
	b = append(b, field...)
	b = appendU32(b, lengthField)
	b = append(b, payload...)
	for len(payload)%4 != 0 {
		b = append(b, 0)
		payload = append(payload, 0)
	}
	return b
}

func TestDeserializeTruncated(t *testing.T) {
	full := appendU32(nil, 1) // prop count
	full = appendU32(full, 1) // child count
	full = appendProp(full, "reg", 4, []byte{1, 2, 3, 4})
	full = appendU32(full, 0) // child: prop count
	full = appendU32(full, 0) // child: child count

	// Sanity: the complete blob parses.
	_, err := dtb.Deserialize(full)
	require.NoError(t, err)

	cuts := map[string]int{
		"empty":               0,
		"mid prop count":      2,
		"mid child count":     6,
		"mid name field":      8 + 10,
		"mid length field":    8 + 34,
		"mid payload":         8 + 38,
		"missing child":       8 + 40,
		"mid child header":    8 + 40 + 3,
		"missing child count": 8 + 40 + 4,
	}
	for name, cut := range cuts {
		t.Run(name, func(t *testing.T) {
			_, err := dtb.Deserialize(full[:cut])
			require.ErrorIs(t, err, dtb.ErrTruncated,
				"no partial tree may come back from a truncated blob")
		})
	}
}

func TestDeserializeAbsurdCounts(t *testing.T) {
	b := appendU32(nil, 0xFFFFFFF) // property count the buffer cannot hold
	b = appendU32(b, 0)
	_, err := dtb.Deserialize(b)
	require.ErrorIs(t, err, dtb.ErrTruncated)

	b = appendU32(nil, 0)
	b = appendU32(b, 0xFFFFFFF) // child count the buffer cannot hold
	_, err = dtb.Deserialize(b)
	require.ErrorIs(t, err, dtb.ErrTruncated)
}

func TestDeserializeDepthGuard(t *testing.T) {
	// 200 nested single-child nodes: deeper than any hardware tree.
	var b []byte
	for i := 0; i < 200; i++ {
		b = appendU32(b, 0)
		b = appendU32(b, 1)
	}
	b = appendU32(b, 0)
	b = appendU32(b, 0)

	_, err := dtb.Deserialize(b)
	require.ErrorIs(t, err, dtb.ErrTooDeep)
}

func TestDeserializeDiscardsEmptyNames(t *testing.T) {
	b := appendU32(nil, 3)
	b = appendU32(b, 0)
	b = appendProp(b, "before", 4, []byte{1, 0, 0, 0})
	b = appendProp(b, "", 4, []byte{9, 9, 9, 9}) // scrubbed record
	b = appendProp(b, "after", 4, []byte{2, 0, 0, 0})

	n, err := dtb.Deserialize(b)
	require.NoError(t, err)

	// The record is parsed (the cursor advanced over it) but not kept.
	require.Equal(t, 2, n.PropCount())
	require.Equal(t, uint32(1), n.FindProp("before").U32())
	require.Equal(t, uint32(2), n.FindProp("after").U32())
}

func TestDeserializeNoNulName(t *testing.T) {
	// A name occupying the full 32-byte field has no NUL terminator; all
	// 32 bytes become the property name.
	name32 := "abcdefghijklmnopqrstuvwxyz012345"
	b := appendU32(nil, 1)
	b = appendU32(b, 0)
	b = appendProp(b, name32, 4, []byte{1, 2, 3, 4})

	n, err := dtb.Deserialize(b)
	require.NoError(t, err)
	require.NotNil(t, n.FindProp(name32))
}

func TestDeserializePlaceholderFlag(t *testing.T) {
	tokens := []byte("zeroes/16\x00\x00\x00")
	b := appendU32(nil, 1)
	b = appendU32(b, 0)
	b = appendProp(b, "pad", uint32(len(tokens))|1<<31, tokens)

	n, err := dtb.Deserialize(b)
	require.NoError(t, err)
	p := n.FindProp("pad")
	require.NotNil(t, p)
	require.True(t, p.Placeholder)
	require.Equal(t, tokens, p.Data)
	require.Equal(t, len(tokens), p.Len(), "flag bit must be masked out of the length")
}

func TestDeserializeMissingFinalPadding(t *testing.T) {
	// The last record's alignment padding may be absent at the end of the
	// stream; the payload itself is all that matters.
	b := appendU32(nil, 1)
	b = appendU32(b, 0)
	field := make([]byte, 32)
	copy(field, "tail")
	b = append(b, field...)
	b = appendU32(b, 2)
	b = append(b, 0xAB, 0xCD) // 2 payload bytes, no padding follows

	n, err := dtb.Deserialize(b)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD}, n.FindProp("tail").Data)
}

func TestDeserializeIgnoresTrailingBytes(t *testing.T) {
	root := dtb.NewRoot()
	root.AddChild("only")
	blob := append(root.Marshal(), 0xFF, 0xFF, 0xFF, 0xFF)

	n, err := dtb.Deserialize(blob)
	require.NoError(t, err)
	require.Len(t, n.Children, 1)
}
