package dtb

import "errors"

// SkipSubtree may be returned from a Walk callback to prune the current
// node's children without stopping the walk.
var SkipSubtree = errors.New("dtb: skip subtree")

// Walk visits n and every descendant in pre-order, the same order the
// serializer emits them. The callback receives each node's slash-separated
// path from n ("/" for n itself). Any error other than SkipSubtree stops
// the walk and is returned.
func (n *Node) Walk(fn func(path string, node *Node) error) error {
	err := n.walk("/", fn)
	if errors.Is(err, SkipSubtree) {
		return nil
	}
	return err
}

func (n *Node) walk(path string, fn func(string, *Node) error) error {
	if err := fn(path, n); err != nil {
		if errors.Is(err, SkipSubtree) {
			return nil
		}
		return err
	}
	for _, child := range n.Children {
		childPath := path + child.Name()
		if path != "/" {
			childPath = path + "/" + child.Name()
		}
		if err := child.walk(childPath, fn); err != nil {
			return err
		}
	}
	return nil
}
