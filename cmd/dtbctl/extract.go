package main

import (
	"fmt"
	"os"

	"github.com/MrMan314/dtbkit/internal/blobfile"
	"github.com/spf13/cobra"
)

var (
	extractOutput   string
	extractCompress bool
)

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file (required)")
	cmd.Flags().BoolVar(&extractCompress, "compress", false, "zstd-compress the output")
	_ = cmd.MarkFlagRequired("output")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <blob>",
		Short: "Re-emit a blob in canonical form",
		Long: `The extract command parses a blob and serializes it back out. This
resolves placeholder properties (dropping the unresolvable ones), strips
scrubbed records, and normalizes padding, producing the exact bytes an
emission of the parsed tree yields. With --compress the output is a zstd
frame that dtbctl commands read back transparently.

Example:
  dtbctl extract devicetree.bin -o canonical.bin
  dtbctl extract devicetree.bin -o devicetree.bin.zst --compress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	blob := root.Marshal()
	if extractCompress {
		if blob, err = blobfile.Compress(blob); err != nil {
			return fmt.Errorf("failed to compress: %w", err)
		}
	}

	printVerbose("Writing %d bytes to %s\n", len(blob), extractOutput)
	if err := os.WriteFile(extractOutput, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
