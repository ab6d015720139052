package pom

import "strings"

// Text is an optional descriptor value. Valid is false when the element
// does not exist.
type Text struct {
	Value string
	Valid bool
}

func Some(s string) Text {
	return Text{Value: s, Valid: true}
}

var None = Text{}

func (t Text) Get() (string, bool) {
	return t.Value, t.Valid
}

// Or returns the value, or def when t is None.
func (t Text) Or(def string) string {
	if !t.Valid {
		return def
	}
	return t.Value
}

func (t Text) String() string {
	return t.Or("<none>")
}

// TextOf returns the trimmed text of n, or None for a nil node.
func TextOf(n *Node) Text {
	if n == nil {
		return None
	}
	return Some(strings.TrimSpace(n.Text()))
}
