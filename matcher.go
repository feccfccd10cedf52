package treepeg

import (
	"fmt"
	"regexp"
)

// whitespace is the run of spaces consumed before a literal or
// pattern match.  It never records a leaf and never backtracks: once a
// matcher with space skipping enabled is invoked, leading spaces stay
// consumed even when the match that follows fails.  That asymmetry is
// part of the engine's contract, not an oversight.
var whitespace = MatchPattern(" *").NoSpaces().Discard()

// Literal Matcher

// Match succeeds when the input starts with lit, after skipping
// leading spaces.  On success it consumes lit and records a Leaf
// named "literal" unless Discard was set.
func Match(lit string) *LiteralMatcher {
	return &LiteralMatcher{name: "literal", lit: lit, spaces: true, keep: true}
}

type LiteralMatcher struct {
	name   string
	lit    string
	spaces bool
	keep   bool
}

// NoSpaces disables the leading space skip.
func (m *LiteralMatcher) NoSpaces() *LiteralMatcher {
	m.spaces = false
	return m
}

// Discard stops the matcher from recording a leaf.  It still consumes
// input.
func (m *LiteralMatcher) Discard() *LiteralMatcher {
	m.keep = false
	return m
}

func (m *LiteralMatcher) Name() string { return m.name }

func (m *LiteralMatcher) Rename(name string) Parser {
	m.name = name
	return m
}

func (m *LiteralMatcher) Parse(st State, backtrack bool) error {
	ts := textState(st, "Match")
	if m.spaces {
		whitespace.Parse(ts, false)
	}
	if !ts.matchLiteral(m.lit) {
		return ErrNoMatch
	}
	var leaf Value
	p := ts.Position()
	if m.keep {
		leaf = NewLeaf(m.name, m.lit, NewSpan(p, p+len(m.lit)))
	}
	ts.advance(len(m.lit), leaf)
	return nil
}

// Pattern Matcher

// MatchPattern succeeds when the regular expression pat matches at the
// current position, after skipping leading spaces.  The consumed
// length is the length of the overall match and the leaf value is the
// matched text.  An empty match counts as a non-match.
func MatchPattern(pat string) *PatternMatcher {
	return &PatternMatcher{
		name:   "pattern(" + pat + ")",
		re:     regexp.MustCompile(`\A(?:` + pat + `)`),
		spaces: true,
		keep:   true,
	}
}

type PatternMatcher struct {
	name   string
	re     *regexp.Regexp
	spaces bool
	keep   bool
}

// NoSpaces disables the leading space skip.
func (m *PatternMatcher) NoSpaces() *PatternMatcher {
	m.spaces = false
	return m
}

// Discard stops the matcher from recording a leaf.
func (m *PatternMatcher) Discard() *PatternMatcher {
	m.keep = false
	return m
}

func (m *PatternMatcher) Name() string { return m.name }

func (m *PatternMatcher) Rename(name string) Parser {
	m.name = name
	return m
}

func (m *PatternMatcher) Parse(st State, backtrack bool) error {
	ts := textState(st, "MatchPattern")
	if m.spaces {
		whitespace.Parse(ts, false)
	}
	matched, ok := ts.matchPattern(m.re)
	if !ok {
		return ErrNoMatch
	}
	var leaf Value
	p := ts.Position()
	if m.keep {
		leaf = NewLeaf(m.name, matched, NewSpan(p, p+len(matched)))
	}
	ts.advance(len(matched), leaf)
	return nil
}

// Token Matcher

// MatchToken succeeds when pred accepts the current token.  On
// success it consumes the token and records a Leaf named "token"
// carrying it.
func MatchToken(pred func(tok any) bool) *TokenMatcher {
	return &TokenMatcher{name: "token", pred: pred, keep: true}
}

type TokenMatcher struct {
	name string
	pred func(tok any) bool
	keep bool
}

// Discard stops the matcher from recording a leaf.
func (m *TokenMatcher) Discard() *TokenMatcher {
	m.keep = false
	return m
}

func (m *TokenMatcher) Name() string { return m.name }

func (m *TokenMatcher) Rename(name string) Parser {
	m.name = name
	return m
}

func (m *TokenMatcher) Parse(st State, backtrack bool) error {
	ks, ok := st.(*TokenState)
	if !ok {
		panic(fmt.Sprintf("treepeg: MatchToken requires a *TokenState, got %T", st))
	}
	tok, ok := ks.matchToken(m.pred)
	if !ok {
		return ErrNoMatch
	}
	var leaf Value
	if m.keep {
		p := ks.Position()
		leaf = NewLeaf(m.name, tok, NewSpan(p, p+1))
	}
	ks.advance(leaf)
	return nil
}

// Bool Parser

// Bool succeeds or fails unconditionally, consuming nothing and
// producing nothing.  Bool(true) is the trivial branch behind Opt.
func Bool(v bool) Parser {
	return &boolParser{name: "bool", value: v}
}

type boolParser struct {
	name  string
	value bool
}

func (b *boolParser) Name() string { return b.name }

func (b *boolParser) Rename(name string) Parser {
	b.name = name
	return b
}

func (b *boolParser) Parse(st State, backtrack bool) error {
	if !b.value {
		return ErrNoMatch
	}
	return nil
}

func textState(st State, who string) *TextState {
	ts, ok := st.(*TextState)
	if !ok {
		panic(fmt.Sprintf("treepeg: %s requires a *TextState, got %T", who, st))
	}
	return ts
}
