package main

import (
	"fmt"
	"strconv"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/spf13/cobra"
)

var (
	setType   string
	setOutput string
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().
		StringVar(&setType, "type", "string", "Value type: string, u32, u64, null, placeholder, hex")
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Output file (default: rewrite input)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <blob> <path> <name> [value]",
		Short: "Set a property and re-emit the blob",
		Long: `The set command inserts or replaces a property on the node at the
given path, then serializes the tree back out.

Example:
  dtbctl set devicetree.bin "chosen" "boot-args" "debug=0x8"
  dtbctl set devicetree.bin "cpus/cpu0" "clock-frequency" 24000000 --type u32
  dtbctl set devicetree.bin "arm-io/wlan" "local-mac-address" "macaddr/wifi" --type placeholder
  dtbctl set devicetree.bin "chosen" "dtbkit-processed" --type null -o out.bin`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	blobPath, nodePath, name := args[0], args[1], args[2]
	var value string
	if len(args) > 3 {
		value = args[3]
	}

	root, err := loadTree(blobPath)
	if err != nil {
		return err
	}
	node, err := resolveNode(root, nodePath)
	if err != nil {
		return err
	}

	if err := setProp(node, name, value); err != nil {
		return err
	}

	out := setOutput
	if out == "" {
		out = blobPath
	}
	return writeTree(root, out)
}

func setProp(node *dtb.Node, name, value string) error {
	switch setType {
	case "string":
		node.SetPropString(name, value)
	case "u32":
		v, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid u32 value %q: %w", value, err)
		}
		node.SetPropU32(name, uint32(v))
	case "u64":
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid u64 value %q: %w", value, err)
		}
		node.SetPropU64(name, v)
	case "null":
		node.SetPropNull(name)
	case "placeholder":
		if value == "" {
			return fmt.Errorf("placeholder type requires a token string value")
		}
		node.SetPlaceholder(name, value)
	case "hex":
		data, err := decodeHex(value)
		if err != nil {
			return fmt.Errorf("invalid hex value %q: %w", value, err)
		}
		node.SetProp(name, data)
	default:
		return fmt.Errorf("unknown value type %q", setType)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd digit count")
	}
	data := make([]byte, len(s)/2)
	for i := range data {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, err
		}
		data[i] = byte(v)
	}
	return data, nil
}
