package treepeg

import "regexp"

// State is the mutable input-plus-cursor abstraction every parser
// operates on.  One State is created per parse invocation, mutated in
// place throughout, and read once at the end through Root.
//
// The result stack is a flat ordered sequence of the fragments
// produced so far at the current nesting level; combinators turn a
// contiguous suffix of it into one grouped Node as they complete.
type State interface {
	// Position returns the current input position: a character
	// offset for text input, a token index for tokens.
	Position() int

	// Snapshot captures the stack membership and cursor so a
	// failed attempt can be unwound.  The copy is shallow: the
	// fragments themselves are already finalized and shared.
	Snapshot() Snapshot

	// Restore resets the state to a previously captured snapshot.
	Restore(Snapshot)

	// Len returns the current result stack length.
	Len() int

	// Values returns the current result stack.
	Values() []Value

	// Push appends a fragment to the result stack.
	Push(Value)

	// Pop removes and returns the top fragment.
	Pop() (Value, bool)

	// Root returns the first top-level fragment.  By convention
	// it is the sole fragment left after a successful top-level
	// parse.
	Root() (Value, bool)

	// GroupSince replaces every fragment pushed after the stack
	// was mark long with a single Node.  Immediate children that
	// are anonymous "seq" nodes are flattened in place.  Grouping
	// zero fragments is a no-op.
	GroupSince(name string, mark int)

	// GroupLast groups the top n fragments the same way.
	GroupLast(name string, n int)
}

// Snapshot is an opaque capture of a State, produced by Snapshot and
// consumed by Restore.
type Snapshot struct {
	values []Value
	pos    int
}

// parseState carries the result stack shared by both input kinds.
type parseState struct {
	values []Value
}

func (s *parseState) Len() int        { return len(s.values) }
func (s *parseState) Values() []Value { return s.values }
func (s *parseState) Push(v Value)    { s.values = append(s.values, v) }

func (s *parseState) Pop() (Value, bool) {
	idx := len(s.values) - 1
	if idx < 0 {
		return nil, false
	}
	top := s.values[idx]
	s.values = s.values[:idx]
	return top, true
}

func (s *parseState) Root() (Value, bool) {
	if len(s.values) == 0 {
		return nil, false
	}
	return s.values[0], true
}

func (s *parseState) GroupSince(name string, mark int) {
	s.group(name, len(s.values)-mark)
}

func (s *parseState) GroupLast(name string, n int) {
	s.group(name, n)
}

func (s *parseState) group(name string, n int) {
	if n <= 0 {
		return
	}
	at := len(s.values) - n
	children := make([]Value, 0, n)
	for _, v := range s.values[at:] {
		if node, ok := v.(*Node); ok && node.Name() == "seq" {
			// anonymous sequences are flattened, named
			// nodes keep their structure
			children = append(children, node.Children()...)
		} else {
			children = append(children, v)
		}
	}
	s.values = append(s.values[:at], NewNode(name, children))
}

func (s *parseState) snapshotValues() []Value {
	return append([]Value(nil), s.values...)
}

func (s *parseState) restoreValues(values []Value) {
	s.values = values
}

// Text State

// TextState is the character stream State.  Matching is by literal
// prefix or anchored regular expression against the unconsumed tail.
type TextState struct {
	parseState
	input  string
	offset int
}

func NewTextState(input string) *TextState {
	return &TextState{input: input}
}

func (s *TextState) Position() int { return s.offset }

func (s *TextState) Snapshot() Snapshot {
	return Snapshot{values: s.snapshotValues(), pos: s.offset}
}

func (s *TextState) Restore(snap Snapshot) {
	s.restoreValues(snap.values)
	s.offset = snap.pos
}

// Input returns the full original input.
func (s *TextState) Input() string { return s.input }

// Rest returns the unconsumed tail of the input.
func (s *TextState) Rest() string { return s.input[s.offset:] }

// matchLiteral reports whether the unconsumed input starts with lit.
func (s *TextState) matchLiteral(lit string) bool {
	rest := s.Rest()
	return len(rest) >= len(lit) && rest[:len(lit)] == lit
}

// matchPattern matches re against the start of the unconsumed input
// and returns the overall match.  An empty match counts as no match.
func (s *TextState) matchPattern(re *regexp.Regexp) (string, bool) {
	m := re.FindString(s.Rest())
	return m, m != ""
}

// advance consumes n characters and optionally records a fragment.
func (s *TextState) advance(n int, v Value) {
	if v != nil {
		s.Push(v)
	}
	s.offset += n
}

// Token State

// TokenState is the State over a fixed sequence of pre-classified
// tokens.  Tokens are opaque to the engine: grammars test them with
// predicates.
type TokenState struct {
	parseState
	tokens []any
	cursor int
}

func NewTokenState(tokens []any) *TokenState {
	return &TokenState{tokens: tokens}
}

func (s *TokenState) Position() int { return s.cursor }

func (s *TokenState) Snapshot() Snapshot {
	return Snapshot{values: s.snapshotValues(), pos: s.cursor}
}

func (s *TokenState) Restore(snap Snapshot) {
	s.restoreValues(snap.values)
	s.cursor = snap.pos
}

// matchToken returns the current token when pred accepts it.  Past the
// last token there is no current token and nothing matches.
func (s *TokenState) matchToken(pred func(any) bool) (any, bool) {
	if s.cursor >= len(s.tokens) {
		return nil, false
	}
	tok := s.tokens[s.cursor]
	if !pred(tok) {
		return nil, false
	}
	return tok, true
}

// advance consumes one token and optionally records a fragment.
func (s *TokenState) advance(v Value) {
	if v != nil {
		s.Push(v)
	}
	s.cursor++
}
