// Package format houses the low-level constants and helpers for the Apple
// device tree blob wire format. The goal is to keep the byte-level knowledge
// in one place, independent from the public API, so higher-level packages can
// orchestrate the data in a more ergonomic form.
//
// A blob is a single pre-order dump of the tree:
//
//	Node        := PropCount:u32 ChildCount:u32 Prop* Child*
//	Prop        := Name:u8[32] LengthField:u32 Payload:u8[Align4(len)]?
//	LengthField := bit31 = placeholder flag; bits 0-30 = payload length
//
// All multi-byte integers are little-endian. Property names are NUL-padded
// (or truncated) to exactly 32 bytes. Payload bytes are padded to the next
// 4-byte boundary; the padding carries no meaning.
package format
