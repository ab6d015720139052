package pom

import (
	"encoding/xml"
	"strings"
)

// Node is an element of a parsed descriptor. Comments, processing
// instructions and directives are not kept.
type Node struct {
	Name     string
	Attr     []xml.Attr
	Children []*Node

	// text and child elements in document order
	content []content
}

type content struct {
	text  string
	child *Node
}

func (n *Node) appendChild(c *Node) {
	n.Children = append(n.Children, c)
	n.content = append(n.content, content{child: c})
}

func (n *Node) appendText(s string) {
	n.content = append(n.content, content{text: s})
}

// Text returns the character data of n and all of its descendants,
// concatenated in document order.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	for _, c := range n.content {
		if c.child != nil {
			c.child.writeText(sb)
		} else {
			sb.WriteString(c.text)
		}
	}
}

// Child returns the first direct child named name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find returns the direct child named name if there is one, otherwise the
// first descendant with that name in document order.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if c := n.Child(name); c != nil {
		return c
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Attribute returns the value of the attribute with the given local name.
func (n *Node) Attribute(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
