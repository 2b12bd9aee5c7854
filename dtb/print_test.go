package dtb_test

import (
	"strings"
	"testing"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/stretchr/testify/require"
)

func TestFormatPropValue(t *testing.T) {
	n := dtb.NewRoot()

	n.SetPropString("str", "hello")
	require.Equal(t, `"hello"`, dtb.FormatPropValue(n.FindProp("str"), 0))

	n.SetPropU32("u32", 0x1234)
	require.Equal(t, "0x00001234", dtb.FormatPropValue(n.FindProp("u32"), 0))

	n.SetPropU64("u64", 0x1234)
	require.Equal(t, "0x0000000000001234", dtb.FormatPropValue(n.FindProp("u64"), 0))

	n.SetPropNull("marker")
	require.Equal(t, "<marker>", dtb.FormatPropValue(n.FindProp("marker"), 0))

	n.SetPlaceholder("mac", "macaddr/en0")
	require.Equal(t, `placeholder "macaddr/en0" -> 6 bytes`,
		dtb.FormatPropValue(n.FindProp("mac"), 0))

	n.SetProp("blob", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01})
	require.Equal(t, "de ad be ef 00 01", dtb.FormatPropValue(n.FindProp("blob"), 0))
	require.Equal(t, "de ad... (6 bytes)", dtb.FormatPropValue(n.FindProp("blob"), 2))
}

func TestPrintTree(t *testing.T) {
	root := dtb.NewRoot()
	root.SetPropString("compatible", "apple,t8030")
	io := root.AddChild("arm-io")
	io.AddChild("uart0")

	var out strings.Builder
	opts := dtb.DefaultPrintOptions()
	opts.ShowProps = true
	require.NoError(t, root.Print(&out, opts))

	text := out.String()
	require.Contains(t, text, "/ (1 props, 1 children)")
	require.Contains(t, text, "arm-io (1 props, 1 children)")
	require.Contains(t, text, "uart0")
	require.Contains(t, text, "compatible")

	// Depth limiting hides deeper levels.
	out.Reset()
	opts.ShowProps = false
	opts.MaxDepth = 1
	require.NoError(t, root.Print(&out, opts))
	require.NotContains(t, out.String(), "arm-io")
}
