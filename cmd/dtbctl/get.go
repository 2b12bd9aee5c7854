package main

import (
	"fmt"
	"os"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/spf13/cobra"
)

var getRaw bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getRaw, "raw", false, "Write the raw payload bytes to stdout")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <blob> <path> <name>",
		Short: "Get a specific property",
		Long: `The get command retrieves and displays one property of a node.

Example:
  dtbctl get devicetree.bin "" "compatible"
  dtbctl get devicetree.bin "chosen" "boot-args"
  dtbctl get devicetree.bin "arm-io/wlan" "local-mac-address" --raw > mac.bin`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	node, err := resolveNode(root, args[1])
	if err != nil {
		return err
	}

	prop := node.FindProp(args[2])
	if prop == nil {
		return fmt.Errorf("no property %q at path %q", args[2], args[1])
	}

	if getRaw {
		_, err := os.Stdout.Write(prop.Data)
		return err
	}

	fmt.Printf("%s (%d bytes): %s\n", prop.Name, prop.Len(), dtb.FormatPropValue(prop, 0))
	return nil
}
