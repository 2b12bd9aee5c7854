package dtb

import (
	"fmt"
	"io"
	"strings"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxValueBytes = 16
)

// PrintOptions controls Print behavior.
type PrintOptions struct {
	// IndentSize is the number of spaces per nesting level.
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	MaxDepth int

	// ShowProps includes property lines under each node.
	// Default: false
	ShowProps bool

	// MaxValueBytes truncates hex dumps of long payloads (0 = default).
	MaxValueBytes int
}

// DefaultPrintOptions returns the options Print uses for a plain tree view.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		IndentSize:    DefaultIndentSize,
		MaxValueBytes: DefaultMaxValueBytes,
	}
}

// Print writes a human-readable rendering of n's subtree to w.
func (n *Node) Print(w io.Writer, opts PrintOptions) error {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.MaxValueBytes <= 0 {
		opts.MaxValueBytes = DefaultMaxValueBytes
	}
	return n.print(w, opts, 0)
}

func (n *Node) print(w io.Writer, opts PrintOptions, depth int) error {
	indent := strings.Repeat(" ", depth*opts.IndentSize)

	name := n.Name()
	if name == "" {
		name = "/"
	}
	if _, err := fmt.Fprintf(w, "%s%s (%d props, %d children)\n",
		indent, name, len(n.props), len(n.Children)); err != nil {
		return err
	}

	if opts.ShowProps {
		propIndent := indent + strings.Repeat(" ", opts.IndentSize)
		for _, p := range n.props {
			if _, err := fmt.Fprintf(w, "%s%-20s %s\n",
				propIndent, p.Name, FormatPropValue(p, opts.MaxValueBytes)); err != nil {
				return err
			}
		}
	}

	if opts.MaxDepth != 0 && depth+1 >= opts.MaxDepth {
		return nil
	}
	for _, child := range n.Children {
		if err := child.print(w, opts, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// FormatPropValue renders a property payload for display: placeholders show
// their token string, common scalar widths decode as integers, printable
// payloads as strings, and everything else as a truncated hex dump.
func FormatPropValue(p *Prop, maxBytes int) string {
	switch {
	case p.Placeholder:
		return fmt.Sprintf("placeholder %q -> %d bytes", string(p.Data), ResolvePlaceholder(string(p.Data)))
	case len(p.Data) == 0:
		return "<marker>"
	case isPrintable(p.Data):
		return fmt.Sprintf("%q", p.StringValue())
	case len(p.Data) == 4:
		return fmt.Sprintf("0x%08x", p.U32())
	case len(p.Data) == 8:
		return fmt.Sprintf("0x%016x", p.U64())
	default:
		if maxBytes > 0 && len(p.Data) > maxBytes {
			return fmt.Sprintf("% x... (%d bytes)", p.Data[:maxBytes], len(p.Data))
		}
		return fmt.Sprintf("% x", p.Data)
	}
}

// isPrintable reports whether data looks like NUL-terminated ASCII text.
func isPrintable(data []byte) bool {
	if len(data) < 2 || data[len(data)-1] != 0 {
		return false
	}
	for _, c := range data[:len(data)-1] {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
