package format

const (
	// PropNameLen is the fixed width of the on-wire property name field.
	// Names are NUL-padded to this width; a usable name is therefore at
	// most PropNameLen-1 bytes long.
	PropNameLen = 32

	// PlaceholderFlag is the bit in the length field marking a property
	// whose payload is a placeholder token string rather than literal
	// bytes. The flag is masked off during deserialization and never
	// survives re-emission.
	PlaceholderFlag = uint32(1) << 31

	// LengthMask extracts the payload length from the length field.
	LengthMask = ^PlaceholderFlag

	// NodeHeaderSize is the size of the two leading count fields
	// (property count and child count) of every node record.
	NodeHeaderSize = 8

	// LengthFieldSize is the size of the property length field.
	LengthFieldSize = 4

	// PropHeaderSize is the fixed overhead of every emitted property
	// record: the name field plus the length field.
	PropHeaderSize = PropNameLen + LengthFieldSize

	// Alignment is the payload alignment unit. Payloads are padded to
	// this boundary in the stream.
	Alignment = 4

	// MaxDepth bounds deserialization recursion. Real device trees are a
	// handful of levels deep; anything past this is a malformed or
	// hostile blob, not hardware description.
	MaxDepth = 128
)

// Align4 returns n rounded up to the next 4-byte boundary.
//
// Example:
//
//	Align4(0) = 0
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + (Alignment - 1)) &^ (Alignment - 1)
}
