// Package dtb models, parses, and emits Apple device tree blobs.
//
// # Overview
//
// A device tree blob is a compact binary dump of a hardware description
// tree: nodes with named byte-payload properties and an ordered list of
// children. This package provides the in-memory tree, a deserializer for
// incoming blobs, an exact-size calculator, and a serializer that fills a
// caller-allocated buffer.
//
// # Key Types
//
//   - Node: one tree vertex, owning a property set and ordered children
//   - Prop: a named byte payload attached to a node
//
// # Emission Contract
//
// SerializedSize and Serialize are two traversals of the same tree that
// must agree byte for byte. Both share one placeholder resolver and one
// per-property size formula, so for any tree t:
//
//	n, err := t.Serialize(make([]byte, t.SerializedSize()))
//	// err == nil && n == t.SerializedSize()
//
// No mutation may occur between the size pass and the serialize pass of one
// emission; the tree has no internal locking and both passes must observe
// identical state.
//
// # Placeholder Properties
//
// A placeholder property stores a comma-separated token string instead of
// payload bytes. At emission time the tokens are resolved to a concrete
// length ("macaddr/...", "syscfg/XXXX/NNN", "zeroes/NNN"); a resolution of
// zero drops the property from the output entirely. The emitted region is
// reserved space only, never computed content.
package dtb
