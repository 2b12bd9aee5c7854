package dtb

// Stats summarizes a subtree for tooling and diagnostics.
type Stats struct {
	Nodes          int // node count including the subtree root
	Props          int // property count across all nodes
	Placeholders   int // properties still carrying placeholder tokens
	MaxDepth       int // deepest nesting level, 1 for a lone node
	SerializedSize int // exact emission size per SerializedSize
}

// Stats walks n's subtree and returns aggregate counts.
func (n *Node) Stats() Stats {
	s := Stats{SerializedSize: n.SerializedSize()}
	n.collectStats(&s, 1)
	return s
}

func (n *Node) collectStats(s *Stats, depth int) {
	s.Nodes++
	s.Props += len(n.props)
	for _, p := range n.props {
		if p.Placeholder {
			s.Placeholders++
		}
	}
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	for _, child := range n.Children {
		child.collectStats(s, depth+1)
	}
}
