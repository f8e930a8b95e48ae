package nfa

import "fmt"

// InvariantError indicates the NFA builder itself violated one of its
// own invariants. Of raises it only when its switch meets a pattern kind
// it does not recognize. Per the spec's failure model, this is a bug in
// the builder, not a condition a caller of nfa_of can trigger or recover
// from.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("nfa: %s: %s", e.Op, e.Message)
}
