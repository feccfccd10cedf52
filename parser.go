// Package treepeg is a small parsing-expression-grammar engine: a set
// of composable parsers that consume a character or token stream and
// build a parse tree, with explicit backtracking, ordered choice,
// required matches, and forward-declared recursive rules.
//
// Grammars are built declaratively in Go code:
//
//	g := treepeg.NewGrammar("expr")
//	g.Define("expr", treepeg.Seq(g.Rule("term"),
//		treepeg.Repeat(treepeg.Seq(g.Rule("op"), g.Rule("term")), 0)))
//	g.Define("op", treepeg.Choice(treepeg.Match("+"), treepeg.Match("-")))
//	g.Define("term", treepeg.MatchPattern("[0-9]+"))
//
//	root, err := g.Apply(treepeg.NewTextState("1+2-3"))
package treepeg

// Parser is a single parsing expression.  Parse mutates st on success
// and returns nil; on an ordinary non-match it returns ErrNoMatch; a
// Require that cannot be satisfied returns *ParseError, which aborts
// the whole parse.
//
// The backtrack flag is the engine's transactional protocol.  When it
// is false the call is the outermost attempt and must leave st exactly
// as it found it on soft failure.  When it is true, a caller further
// up holds a snapshot and will unwind any partial mutations, so the
// callee can fail without restoring.  This avoids redundant
// snapshot/restore work in nested sequences and repetitions.
type Parser interface {
	Parse(st State, backtrack bool) error

	// Name is the name stamped onto the values this parser
	// produces.
	Name() string

	// Rename changes the parser's name and returns the parser.
	// Binding an expression to a grammar rule renames it to the
	// rule name.
	Rename(name string) Parser
}

// Action adapts a plain function into a Parser so clients can hook
// tree post-processing (renaming, regrouping) directly into grammar
// position.  fn reports success by returning nil and an ordinary
// non-match with ErrNoMatch.
func Action(name string, fn func(st State) error) Parser {
	return &actionParser{name: name, fn: fn}
}

type actionParser struct {
	name string
	fn   func(st State) error
}

func (a *actionParser) Parse(st State, backtrack bool) error { return a.fn(st) }
func (a *actionParser) Name() string                         { return a.name }

func (a *actionParser) Rename(name string) Parser {
	a.name = name
	return a
}
