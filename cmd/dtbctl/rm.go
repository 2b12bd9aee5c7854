package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmOutput string

func init() {
	cmd := newRmCmd()
	cmd.Flags().StringVarP(&rmOutput, "output", "o", "", "Output file (default: rewrite input)")
	rootCmd.AddCommand(cmd)
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <blob> <path> [name]",
		Short: "Remove a node or a property and re-emit the blob",
		Long: `With two arguments, rm removes the node at the given path and its
whole subtree. With three, it removes the named property of that node.

Example:
  dtbctl rm devicetree.bin "arm-io/dart-sio"
  dtbctl rm devicetree.bin "chosen" "boot-args" -o out.bin`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}
	return cmd
}

func runRm(args []string) error {
	blobPath, nodePath := args[0], args[1]

	root, err := loadTree(blobPath)
	if err != nil {
		return err
	}

	if len(args) > 2 {
		node, err := resolveNode(root, nodePath)
		if err != nil {
			return err
		}
		if !node.RemoveProp(args[2]) {
			return fmt.Errorf("no property %q at path %q", args[2], nodePath)
		}
	} else {
		node, err := resolveNode(root, nodePath)
		if err != nil {
			return err
		}
		if node == root {
			return fmt.Errorf("cannot remove the root node")
		}
		parentPath, name := splitParent(nodePath)
		parent, err := resolveNode(root, parentPath)
		if err != nil {
			return err
		}
		if !parent.RemoveChildNamed(name) {
			return fmt.Errorf("no node at path %q", nodePath)
		}
	}

	out := rmOutput
	if out == "" {
		out = blobPath
	}
	return writeTree(root, out)
}

// splitParent splits "a/b/c" into "a/b" and "c", tolerating stray slashes.
func splitParent(path string) (parent, name string) {
	end := len(path)
	for end > 0 && path[end-1] == '/' {
		end--
	}
	cut := end
	for cut > 0 && path[cut-1] != '/' {
		cut--
	}
	return path[:cut], path[cut:end]
}
