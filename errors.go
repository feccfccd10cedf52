package treepeg

import (
	"errors"
	"fmt"
)

// ErrNoMatch is the soft failure sentinel.  It drives backtracking and
// ordered choice and never surfaces to a caller unless every
// alternative at every level is exhausted.
var ErrNoMatch = errors.New("no match")

// ParseError is the hard failure raised by Require when a committed
// continuation is missing.  It is never caught inside the engine and
// aborts the whole parse.
type ParseError struct {
	Position int
	Code     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at %d: %s", e.Position, e.Code)
}

// isFatal distinguishes the Require channel from ordinary
// backtrackable non-matches.
func isFatal(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
