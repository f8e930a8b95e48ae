package dfa

import "fmt"

// InvariantError indicates the DFA builder or minimizer violated one of
// its own invariants. Per the spec's failure model this is a bug in the
// builder, not a condition a caller of Of or Minimize can trigger.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("dfa: %s: %s", e.Op, e.Message)
}
