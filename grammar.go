package treepeg

import "fmt"

// Grammar is a named registry of mutually recursive rules.  Rules may
// be referenced before they are defined: Rule hands out a forward
// reference cell that Define later fills in.  Binding an expression
// to a rule renames it to the rule name, which is the name the rule's
// grouped output carries in the parse tree.
type Grammar struct {
	start string
	rules map[string]*Ref
}

// NewGrammar creates a grammar that dispatches to the start rule when
// invoked.
func NewGrammar(start string) *Grammar {
	return &Grammar{start: start, rules: map[string]*Ref{}}
}

// Rule returns the reference cell for name, creating an empty one
// when the rule has not been mentioned before.
func (g *Grammar) Rule(name string) Parser {
	return g.ref(name)
}

// Define binds expr as the rule's body and stamps the rule name onto
// it.  Defining the same rule again replaces the body.
func (g *Grammar) Define(name string, expr Parser) {
	ref := g.ref(name)
	ref.Set(expr)
	ref.Rename(name)
}

func (g *Grammar) ref(name string) *Ref {
	ref, ok := g.rules[name]
	if !ok {
		ref = NewRef()
		ref.name = name
		g.rules[name] = ref
	}
	return ref
}

// Name returns the start rule name.
func (g *Grammar) Name() string { return g.start }

// Rename redesignates the start rule.
func (g *Grammar) Rename(name string) Parser {
	g.start = name
	return g
}

// Parse dispatches to the start rule, making the grammar usable
// anywhere a Parser is.
func (g *Grammar) Parse(st State, backtrack bool) error {
	ref, ok := g.rules[g.start]
	if !ok {
		panic(fmt.Sprintf("treepeg: start rule %q is not defined", g.start))
	}
	return ref.Parse(st, backtrack)
}

// Apply runs the grammar over st as the outermost attempt and returns
// the root of the resulting parse tree.
func (g *Grammar) Apply(st State) (Value, error) {
	if err := g.Parse(st, false); err != nil {
		return nil, err
	}
	root, ok := st.Root()
	if !ok {
		return nil, ErrNoMatch
	}
	return root, nil
}
