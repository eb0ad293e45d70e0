package wml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Node is the generic parsed-XML input to every decoder: a tag name, an
// ordered attribute list, ordered element children, and text content.
// Decoders borrow nodes and never modify them.
type Node struct {
	node *xmlquery.Node
}

// Attribute is one attribute of a node, in document order.
type Attribute struct {
	Name  string
	Value string
}

// ParseXML parses XML data and returns the root element node.
func ParseXML(data []byte) (*Node, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}, nil
		}
	}
	return nil, fmt.Errorf("parsing XML: no root element")
}

// Wrap adapts an already-parsed xmlquery element node.
func Wrap(n *xmlquery.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{node: n}
}

// Tag returns the element's local name, without namespace prefix.
func (n *Node) Tag() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.Data
}

// Depth returns the number of element ancestors above this node.
func (n *Node) Depth() int {
	if n == nil || n.node == nil {
		return 0
	}
	depth := 0
	for p := n.node.Parent; p != nil; p = p.Parent {
		if p.Type == xmlquery.ElementNode {
			depth++
		}
	}
	return depth
}

// Attr returns the value of the named attribute and whether it is present.
// Lookup is by local name, matching how WordprocessingML attributes are
// conventionally addressed once the w: prefix is stripped.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.node == nil {
		return "", false
	}
	for _, attr := range n.node.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Attrs returns all attributes in document order.
func (n *Node) Attrs() []Attribute {
	if n == nil || n.node == nil {
		return nil
	}
	attrs := make([]Attribute, 0, len(n.node.Attr))
	for _, attr := range n.node.Attr {
		attrs = append(attrs, Attribute{Name: attr.Name.Local, Value: attr.Value})
	}
	return attrs
}

// Children returns the element children in document order.
func (n *Node) Children() []*Node {
	if n == nil || n.node == nil {
		return nil
	}
	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// Child returns the first element child with the given local name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil || n.node == nil {
		return nil
	}
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.Data == name {
			return &Node{node: child}
		}
	}
	return nil
}

// ChildCount returns the number of element children with the given name.
func (n *Node) ChildCount(name string) int {
	count := 0
	for _, child := range n.Children() {
		if child.Tag() == name {
			count++
		}
	}
	return count
}

// Text returns the immediate text content of the node, whitespace intact.
func (n *Node) Text() string {
	if n == nil || n.node == nil {
		return ""
	}
	var buf strings.Builder
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			buf.WriteString(child.Data)
		}
	}
	return buf.String()
}

// InnerText returns all text content of the node and its descendants.
func (n *Node) InnerText() string {
	if n == nil || n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// Query runs an XPath expression rooted at this node.
func (n *Node) Query(expr string) ([]*Node, error) {
	if n == nil || n.node == nil {
		return nil, nil
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling xpath expression: %w", err)
	}
	nodes := xmlquery.QuerySelectorAll(n.node, compiled)
	result := make([]*Node, len(nodes))
	for i, found := range nodes {
		result[i] = &Node{node: found}
	}
	return result, nil
}
