package treepeg

import "fmt"

// Sequence

// Seq matches its operands one after another.  Folding is to the
// left, so Seq(a, b, c) behaves as Seq(Seq(a, b), c).  On success
// every fragment the operands pushed is grouped into one node under
// the sequence's name ("seq" until a rule binding renames it), with
// anonymous "seq" children flattened in place.
func Seq(first Parser, rest ...Parser) Parser {
	p := first
	for _, r := range rest {
		p = &seqParser{name: "seq", left: p, right: r}
	}
	if len(rest) == 0 {
		p = &seqParser{name: "seq", left: first, right: Bool(true)}
	}
	return p
}

type seqParser struct {
	name        string
	left, right Parser
}

func (s *seqParser) Name() string { return s.name }

func (s *seqParser) Rename(name string) Parser {
	s.name = name
	return s
}

func (s *seqParser) Parse(st State, backtrack bool) error {
	// Snapshot only when this call owns the transaction.
	var snap Snapshot
	if !backtrack {
		snap = st.Snapshot()
	}
	mark := st.Len()
	if err := s.parseOperands(st); err != nil {
		if !backtrack && !isFatal(err) {
			st.Restore(snap)
		}
		return err
	}
	st.GroupSince(s.name, mark)
	return nil
}

func (s *seqParser) parseOperands(st State) error {
	if err := s.left.Parse(st, true); err != nil {
		return err
	}
	return s.right.Parse(st, true)
}

// Ordered Choice

// Choice tries its operands in order and commits to the first that
// matches.  It holds no snapshot of its own: each operand runs as its
// own outermost attempt and is responsible for leaving the state
// untouched when it fails.
func Choice(first Parser, rest ...Parser) Parser {
	p := first
	for _, r := range rest {
		p = &altParser{name: "alt", left: p, right: r}
	}
	return p
}

type altParser struct {
	name        string
	left, right Parser
}

func (a *altParser) Name() string { return a.name }

func (a *altParser) Rename(name string) Parser {
	a.name = name
	return a
}

func (a *altParser) Parse(st State, backtrack bool) error {
	mark := st.Len()
	err := a.left.Parse(st, false)
	if err != nil {
		if isFatal(err) {
			return err
		}
		if err = a.right.Parse(st, false); err != nil {
			return err
		}
	}
	// A renamed choice groups its result like a sequence would; an
	// anonymous one leaves the winning branch's output as is.
	if a.name != "alt" {
		st.GroupSince(a.name, mark)
	}
	return nil
}

// Opt makes p optional: when p fails the option trivially succeeds
// having consumed nothing.
func Opt(p Parser) Parser {
	return Choice(p, Bool(true))
}

// Repetition

// Repeat matches p at least min times and then as often as it will
// go.  The first min attempts run inside one transaction: if any of
// them fails the whole repetition fails and consumes nothing.  Each
// attempt past the minimum is its own outermost attempt whose failure
// is swallowed and ends the repetition.  No grouping node is created;
// the enclosing sequence or rule decides whether to group the run.
func Repeat(p Parser, min int) Parser {
	return &repeatParser{name: "repeat", parser: p, min: min}
}

type repeatParser struct {
	name   string
	parser Parser
	min    int
}

func (r *repeatParser) Name() string { return r.name }

func (r *repeatParser) Rename(name string) Parser {
	r.name = name
	return r
}

func (r *repeatParser) Parse(st State, backtrack bool) error {
	var snap Snapshot
	if !backtrack {
		snap = st.Snapshot()
	}
	for i := 0; i < r.min; i++ {
		if err := r.parser.Parse(st, true); err != nil {
			if !backtrack && !isFatal(err) {
				st.Restore(snap)
			}
			return err
		}
	}
	for {
		if err := r.parser.Parse(st, false); err != nil {
			if isFatal(err) {
				return err
			}
			return nil
		}
	}
}

// Required Match

// Require turns p's soft failure into a hard one: when p cannot match
// after the grammar has committed to a branch, parsing stops with a
// *ParseError carrying the position and code.
func Require(p Parser, code string) Parser {
	return &requireParser{name: "require", parser: p, code: code}
}

type requireParser struct {
	name   string
	parser Parser
	code   string
}

func (r *requireParser) Name() string { return r.name }

func (r *requireParser) Rename(name string) Parser {
	r.name = name
	return r
}

func (r *requireParser) Parse(st State, backtrack bool) error {
	err := r.parser.Parse(st, backtrack)
	if err == nil {
		return nil
	}
	if isFatal(err) {
		return err
	}
	return &ParseError{Position: st.Position(), Code: r.code}
}

// Forward Reference

// Ref is a late-bound indirection to a rule that may not be defined
// yet.  Grammar.Rule hands them out and Grammar.Define fills them in;
// calling an unbound Ref is a programming error and panics.
type Ref struct {
	name   string
	parser Parser
}

func NewRef() *Ref { return &Ref{} }

// Set binds the reference to its target.
func (r *Ref) Set(p Parser) { r.parser = p }

func (r *Ref) Name() string { return r.name }

// Rename names the reference and its target, when already bound.
func (r *Ref) Rename(name string) Parser {
	r.name = name
	if r.parser != nil {
		r.parser.Rename(name)
	}
	return r
}

func (r *Ref) Parse(st State, backtrack bool) error {
	if r.parser == nil {
		panic(fmt.Sprintf("treepeg: rule %q referenced but never defined", r.name))
	}
	return r.parser.Parse(st, backtrack)
}
