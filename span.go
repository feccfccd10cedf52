package treepeg

import "fmt"

// Span is the half-open interval [Start, End) of input positions
// covered by a parse tree value.  Positions are character offsets for
// text input and token indexes for tokenized input.
type Span struct{ Start, End int }

func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}
