package pattern

import "fmt"

// ConstraintError reports a violated combinator precondition: AtMost
// requires M >= 1, Times requires N <= M. These are the only
// preconditions the algebra itself enforces; everything else is left to
// the NFA builder.
//
// Combinators panic with a *ConstraintError rather than returning one,
// because a violated precondition here means the catalogue is malformed
// at the call site, not a runtime condition a caller recovers from.
// Callers that do want to turn it back into an error can recover and
// errors.As it.
type ConstraintError struct {
	Combinator string
	Message    string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("pattern: %s: %s", e.Combinator, e.Message)
}
