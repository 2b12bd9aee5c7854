package dtb_test

import (
	"testing"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/stretchr/testify/require"
)

func TestFindNode(t *testing.T) {
	root := dtb.NewRoot()
	cpu0 := root.AddChild("cpu0")
	reg := cpu0.AddChild("reg")

	require.Same(t, reg, root.FindNode("cpu0/reg"))
	require.Same(t, cpu0, root.FindNode("cpu0"))
	require.Nil(t, root.FindNode("cpu0/missing"))
	require.Nil(t, root.FindNode("missing"))

	// Empty path resolves to the starting node itself.
	require.Same(t, root, root.FindNode(""))
	require.Same(t, cpu0, cpu0.FindNode(""))

	// Stray slashes contribute no segments.
	require.Same(t, reg, root.FindNode("/cpu0//reg/"))
	require.Same(t, root, root.FindNode("///"))

	// Resolution can start at any node, not just the root.
	require.Same(t, reg, cpu0.FindNode("reg"))
}

func TestFindNodeExactNameMatch(t *testing.T) {
	root := dtb.NewRoot()
	root.AddChild("cpu")
	cpu0 := root.AddChild("cpu0")

	// A segment must equal the stored name; a prefix of a longer sibling
	// never matches, and a longer segment never matches a shorter name.
	require.Same(t, cpu0, root.FindNode("cpu0"))
	require.Same(t, root.Children[0], root.FindNode("cpu"))
	require.Nil(t, root.FindNode("cp"))
	require.Nil(t, root.FindNode("cpu00"))
}

func TestFindNodeOrder(t *testing.T) {
	// Children are scanned in order; the first name match wins even when a
	// later sibling somehow carries the same name property.
	root := dtb.NewRoot()
	first := root.AddChild("dup")
	second := root.AddChild("other")
	second.SetPropString("name", "dup")

	require.Same(t, first, root.FindNode("dup"))
}

func TestFindNodeSkipsNamelessChildren(t *testing.T) {
	root := dtb.NewRoot()
	child := root.AddChild("named")
	child.RemoveProp("name")

	require.Nil(t, root.FindNode("named"))
}
