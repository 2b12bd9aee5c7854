package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <blob>",
		Short: "Show blob summary statistics",
		Long: `The info command parses a blob and prints aggregate statistics:
node and property counts, remaining placeholders, nesting depth, and the
exact size the tree serializes back to.

Example:
  dtbctl info devicetree.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	stats := root.Stats()
	printInfo("Nodes:           %d\n", stats.Nodes)
	printInfo("Properties:      %d\n", stats.Props)
	printInfo("Placeholders:    %d\n", stats.Placeholders)
	printInfo("Max depth:       %d\n", stats.MaxDepth)
	printInfo("Serialized size: %d bytes\n", stats.SerializedSize)
	return nil
}
