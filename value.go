package treepeg

import (
	"fmt"
	"strings"
)

// Value is the read surface shared by every parse tree fragment.  A
// value is created by the parser that matched it and never mutated by
// the engine afterwards; Rename exists for client post-processing.
type Value interface {
	// Name returns the name inherited from the parser that
	// produced the value, or whatever a client renamed it to.
	Name() string

	// Rename replaces the value's name.
	Rename(name string)

	// Span returns the input interval the value covers.
	Span() Span

	// Len returns the number of children.  It is always zero for
	// a Leaf.
	Len() int

	// Text returns the matched input fragment, concatenated over
	// all children for internal nodes.
	Text() string

	String() string
}

// Leaf Value

// Leaf is a terminal value carrying whatever the matcher consumed: the
// literal or pattern text for text input, the token itself for
// tokenized input.
type Leaf struct {
	name  string
	value any
	span  Span
}

func NewLeaf(name string, value any, span Span) *Leaf {
	return &Leaf{name: name, value: value, span: span}
}

func (l *Leaf) Name() string       { return l.name }
func (l *Leaf) Rename(name string) { l.name = name }
func (l *Leaf) Span() Span         { return l.span }
func (l *Leaf) Len() int           { return 0 }

// Value returns the matched string or token.
func (l *Leaf) Value() any { return l.value }

func (l *Leaf) Text() string {
	switch v := l.value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Leaf) String() string {
	return fmt.Sprintf("%s(%q) @ %s", l.name, l.Text(), l.span)
}

// Node Value

// Node is an internal value owning an ordered, non-empty child list.
// Its span is derived from the children and never stored separately.
type Node struct {
	name     string
	children []Value
}

// NewNode builds an internal node.  It panics on an empty child list:
// an empty sequence never materializes as a node.
func NewNode(name string, children []Value) *Node {
	if len(children) == 0 {
		panic("treepeg: node " + name + " must have at least one child")
	}
	return &Node{name: name, children: children}
}

func (n *Node) Name() string       { return n.name }
func (n *Node) Rename(name string) { n.name = name }
func (n *Node) Len() int           { return len(n.children) }

func (n *Node) Span() Span {
	return Span{
		Start: n.children[0].Span().Start,
		End:   n.children[len(n.children)-1].Span().End,
	}
}

// Child returns the i-th child.
func (n *Node) Child(i int) Value { return n.children[i] }

// Children returns the ordered child list.  The slice is owned by the
// node and must not be mutated.
func (n *Node) Children() []Value { return n.children }

func (n *Node) Text() string {
	var s strings.Builder
	for _, child := range n.children {
		s.WriteString(child.Text())
	}
	return s.String()
}

func (n *Node) String() string {
	var s strings.Builder
	s.WriteString(n.name)
	s.WriteString("(")
	for i, child := range n.children {
		s.WriteString(child.String())
		if i < len(n.children)-1 {
			s.WriteString(", ")
		}
	}
	fmt.Fprintf(&s, ") @ %s", n.Span())
	return s.String()
}
