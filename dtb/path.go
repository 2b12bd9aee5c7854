package dtb

import "strings"

// FindNode resolves a slash-separated path to a descendant of n. Empty
// segments from leading, repeated, or trailing slashes are ignored, so
// "/cpus//cpu0/" and "cpus/cpu0" name the same node. Each segment is
// matched against the children's "name" properties in child order; the
// segment must equal the stored name exactly, a prefix of a longer sibling
// name never matches.
//
// Returns nil when any segment has no matching child. An empty path returns
// n itself.
func (n *Node) FindNode(path string) *Node {
	current := n
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		current = current.childNamed(segment)
		if current == nil {
			return nil
		}
	}
	return current
}
