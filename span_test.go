package treepeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_String(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{
			name:     "empty span renders a single position",
			span:     NewSpan(3, 3),
			expected: "3",
		},
		{
			name:     "non-empty span renders both ends",
			span:     NewSpan(0, 5),
			expected: "0..5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.span.String())
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	tests := []struct {
		name     string
		parent   Span
		other    Span
		expected bool
	}{
		{
			name:     "fully contained span",
			parent:   NewSpan(0, 10),
			other:    NewSpan(2, 8),
			expected: true,
		},
		{
			name:     "identical spans",
			parent:   NewSpan(5, 15),
			other:    NewSpan(5, 15),
			expected: true,
		},
		{
			name:     "other overlaps end boundary",
			parent:   NewSpan(5, 15),
			other:    NewSpan(12, 18),
			expected: false,
		},
		{
			name:     "other completely before parent",
			parent:   NewSpan(10, 20),
			other:    NewSpan(0, 5),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.parent.Contains(tt.other))
		})
	}
}
