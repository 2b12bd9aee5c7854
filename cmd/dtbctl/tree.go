package main

import (
	"fmt"
	"os"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/spf13/cobra"
)

var (
	treeDepth int
	treeProps bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeProps, "props", false, "Show properties too")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <blob> [path]",
		Short: "Display tree structure",
		Long: `The tree command displays a hierarchical view of the device tree.

Example:
  dtbctl tree devicetree.bin
  dtbctl tree devicetree.bin "arm-io/uart0" --props
  dtbctl tree devicetree.bin --depth 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	node := root
	if len(args) > 1 {
		if node, err = resolveNode(root, args[1]); err != nil {
			return err
		}
	}

	opts := dtb.DefaultPrintOptions()
	opts.MaxDepth = treeDepth
	opts.ShowProps = treeProps
	if err := node.Print(os.Stdout, opts); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}
