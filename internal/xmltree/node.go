// Package xmltree builds a generic labeled tree from XML bytes and provides
// the traversal primitives the extraction engine composes from: first
// matching descendant by tag and all matching descendants by tag.
package xmltree

// Node is one element of the parsed document tree. It is treated as
// read-only after decoding; extractors borrow the tree and never mutate it.
type Node struct {
	Tag      string            // local element name, without namespace prefix
	Space    string            // namespace URI the element is bound to
	Text     string            // character data directly under this element
	Attrs    map[string]string // attribute local name -> value
	Children []*Node           // element children in document order
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// FirstDescendant returns the first descendant of n, in document order,
// whose local tag matches. n itself is never considered. Returns nil when
// no descendant matches.
func (n *Node) FirstDescendant(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
		if d := c.FirstDescendant(tag); d != nil {
			return d
		}
	}
	return nil
}

// Descendants returns every descendant of n whose local tag matches, in
// document order. n itself is never included.
func (n *Node) Descendants(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	n.appendDescendants(tag, &out)
	return out
}

func (n *Node) appendDescendants(tag string, out *[]*Node) {
	for _, c := range n.Children {
		if c.Tag == tag {
			*out = append(*out, c)
		}
		c.appendDescendants(tag, out)
	}
}
