package treepeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		parser   Parser
		input    string
		matched  bool
		position int
		stackLen int
		leafName string
		leafText string
		leafSpan Span
	}{
		{
			name:     "literal at start",
			parser:   Match("if"),
			input:    "if x",
			matched:  true,
			position: 2,
			stackLen: 1,
			leafName: "literal",
			leafText: "if",
			leafSpan: NewSpan(0, 2),
		},
		{
			name:     "literal after spaces",
			parser:   Match(")"),
			input:    "   )",
			matched:  true,
			position: 4,
			stackLen: 1,
			leafName: "literal",
			leafText: ")",
			leafSpan: NewSpan(3, 4),
		},
		{
			name:     "literal mismatch",
			parser:   Match("if"),
			input:    "of",
			matched:  false,
			position: 0,
			stackLen: 0,
		},
		{
			name:     "space skipping disabled",
			parser:   Match(")").NoSpaces(),
			input:    "  )",
			matched:  false,
			position: 0,
			stackLen: 0,
		},
		{
			name:     "discarded leaf still consumes",
			parser:   Match("(").Discard(),
			input:    "(1",
			matched:  true,
			position: 1,
			stackLen: 0,
		},
		{
			name:     "pattern match",
			parser:   MatchPattern("[0-9]+"),
			input:    " 345+",
			matched:  true,
			position: 4,
			stackLen: 1,
			leafName: "pattern([0-9]+)",
			leafText: "345",
			leafSpan: NewSpan(1, 4),
		},
		{
			name:     "pattern mismatch",
			parser:   MatchPattern("[0-9]+"),
			input:    "abc",
			matched:  false,
			position: 0,
			stackLen: 0,
		},
		{
			name:     "empty pattern match counts as no match",
			parser:   MatchPattern("z*").NoSpaces(),
			input:    "abc",
			matched:  false,
			position: 0,
			stackLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewTextState(tt.input)
			err := tt.parser.Parse(st, false)

			if !tt.matched {
				require.ErrorIs(t, err, ErrNoMatch)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.position, st.Position())
			require.Equal(t, tt.stackLen, st.Len())

			if tt.stackLen > 0 {
				leaf := st.Values()[0].(*Leaf)
				assert.Equal(t, tt.leafName, leaf.Name())
				assert.Equal(t, tt.leafText, leaf.Text())
				assert.Equal(t, tt.leafSpan, leaf.Span())
			}
		})
	}
}

// Leading whitespace is consumed once a matcher runs, even when the
// literal that follows does not match.  Two probes against the same
// input may therefore differ only after the spaces.
func TestMatch_WhitespaceSkipIsNotUndone(t *testing.T) {
	matching := NewTextState("   )")
	require.NoError(t, Match(")").Parse(matching, false))
	assert.Equal(t, 4, matching.Position())

	failing := NewTextState("   )")
	require.ErrorIs(t, Match("x").Parse(failing, false), ErrNoMatch)
	assert.Equal(t, 3, failing.Position())
	assert.Zero(t, failing.Len())
}

func TestMatchToken(t *testing.T) {
	isEven := func(tok any) bool { return tok.(int)%2 == 0 }

	t.Run("accepted token becomes a leaf", func(t *testing.T) {
		st := NewTokenState([]any{4, 7})
		require.NoError(t, MatchToken(isEven).Parse(st, false))
		assert.Equal(t, 1, st.Position())

		leaf := st.Values()[0].(*Leaf)
		assert.Equal(t, "token", leaf.Name())
		assert.Equal(t, 4, leaf.Value())
		assert.Equal(t, NewSpan(0, 1), leaf.Span())
	})

	t.Run("rejected token", func(t *testing.T) {
		st := NewTokenState([]any{7})
		require.ErrorIs(t, MatchToken(isEven).Parse(st, false), ErrNoMatch)
		assert.Zero(t, st.Position())
		assert.Zero(t, st.Len())
	})

	t.Run("end of input", func(t *testing.T) {
		st := NewTokenState(nil)
		require.ErrorIs(t, MatchToken(isEven).Parse(st, false), ErrNoMatch)
	})

	t.Run("discarded token leaf", func(t *testing.T) {
		st := NewTokenState([]any{2})
		require.NoError(t, MatchToken(isEven).Discard().Parse(st, false))
		assert.Equal(t, 1, st.Position())
		assert.Zero(t, st.Len())
	})
}

func TestBool(t *testing.T) {
	st := NewTextState("abc")

	require.NoError(t, Bool(true).Parse(st, false))
	require.ErrorIs(t, Bool(false).Parse(st, false), ErrNoMatch)
	assert.Zero(t, st.Position())
	assert.Zero(t, st.Len())
}

func TestMatch_PanicsOnWrongStateKind(t *testing.T) {
	assert.Panics(t, func() {
		Match("a").Parse(NewTokenState(nil), false)
	})
	assert.Panics(t, func() {
		MatchToken(func(any) bool { return true }).Parse(NewTextState("a"), false)
	})
}
