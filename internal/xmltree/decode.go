package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"

	"fjacquet/camt-extract/internal/parsererror"
)

// Decode parses XML bytes from r into a Node tree by re-assembling the
// decoder's token stream with a stack of open elements.
//
// The decoder runs in strict mode with no custom entity table and no charset
// reader, so external entity resolution and network fetches cannot happen
// while parsing untrusted statement files.
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Node
		stack []*Node
	)

	for {
		token, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &parsererror.StructuralError{
				Msg: "document is not well-formed XML",
				Err: err,
			}
		}

		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local, Space: t.Name.Space}
			for _, a := range t.Attr {
				// Namespace declarations are reflected in Node.Space,
				// not carried as ordinary attributes.
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				if n.Attrs == nil {
					n.Attrs = make(map[string]string, len(t.Attr))
				}
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, parsererror.NewStructuralError(t.Name.Local, "document has more than one root element")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, parsererror.NewStructuralError("", "document has no root element")
	}
	return root, nil
}

// DecodeBytes parses XML from an in-memory byte slice.
func DecodeBytes(data []byte) (*Node, error) {
	return Decode(bytes.NewReader(data))
}
