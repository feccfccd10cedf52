package treepeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_SpanIsDerivedFromChildren(t *testing.T) {
	a := NewLeaf("a", "foo", NewSpan(0, 3))
	b := NewLeaf("b", "bar", NewSpan(3, 6))
	c := NewLeaf("c", "!", NewSpan(6, 7))

	inner := NewNode("inner", []Value{b, c})
	root := NewNode("root", []Value{a, inner})

	assert.Equal(t, NewSpan(3, 7), inner.Span())
	assert.Equal(t, NewSpan(0, 7), root.Span())
	assert.Equal(t, 2, root.Len())
	assert.Equal(t, "foobar!", root.Text())
}

func TestNode_RequiresAtLeastOneChild(t *testing.T) {
	assert.Panics(t, func() { NewNode("empty", nil) })
}

func TestLeaf_TextForTokenValues(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "string value",
			value:    "hello",
			expected: "hello",
		},
		{
			name:     "integer value",
			value:    42,
			expected: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := NewLeaf("token", tt.value, NewSpan(0, 1))
			assert.Equal(t, tt.expected, leaf.Text())
			assert.Zero(t, leaf.Len())
		})
	}
}

func TestValue_Rename(t *testing.T) {
	leaf := NewLeaf("literal", "+", NewSpan(1, 2))
	leaf.Rename("plus")
	assert.Equal(t, "plus", leaf.Name())

	node := NewNode("seq", []Value{leaf})
	node.Rename("operator")
	assert.Equal(t, "operator", node.Name())
}

func TestDump(t *testing.T) {
	root := NewNode("expr", []Value{
		NewLeaf("number", "1", NewSpan(0, 1)),
		NewLeaf("literal", "+", NewSpan(1, 2)),
		NewLeaf("number", "2", NewSpan(2, 3)),
	})

	var out strings.Builder
	Dump(&out, root)

	expected := `expr:
    number: "1"
    literal: "+"
    number: "2"
`
	assert.Equal(t, expected, out.String())
}

func TestPretty(t *testing.T) {
	root := NewNode("expr", []Value{
		NewLeaf("number", "1", NewSpan(0, 1)),
		NewNode("op", []Value{NewLeaf("literal", "+", NewSpan(1, 2))}),
		NewLeaf("number", "2", NewSpan(2, 3)),
	})

	expected := `expr (0..3)
├── "1" (0..1)
├── op (1..2)
│   └── "+" (1..2)
└── "2" (2..3)`

	require.Equal(t, expected, Pretty(root))
}
