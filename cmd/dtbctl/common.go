package main

import (
	"fmt"
	"os"

	"github.com/MrMan314/dtbkit/dtb"
	"github.com/MrMan314/dtbkit/internal/blobfile"
)

// loadTree opens a blob file and deserializes it into a tree.
func loadTree(path string) (*dtb.Node, error) {
	printVerbose("Opening blob: %s\n", path)

	b, err := blobfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	defer b.Close()

	root, err := dtb.Deserialize(b.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blob: %w", err)
	}
	return root, nil
}

// writeTree serializes root and writes it to path.
func writeTree(root *dtb.Node, path string) error {
	blob := root.Marshal()
	printVerbose("Writing %d bytes to %s\n", len(blob), path)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

// resolveNode looks up a node by slash-separated path, with a friendly error.
func resolveNode(root *dtb.Node, path string) (*dtb.Node, error) {
	node := root.FindNode(path)
	if node == nil {
		return nil, fmt.Errorf("no node at path %q", path)
	}
	return node, nil
}
