// Package token specifies only the shape the generator facade consumes
// from a token catalogue: it never grows domain-specific token kinds of
// its own, keeping the catalogue genuinely open to callers.
package token

import "github.com/coregx/lexgen/pattern"

// Action maps a matched lexeme to a token value. The value's concrete
// type is opaque to the core; callers that only ever produce a constant
// value for a given kind can ignore the lexeme argument entirely.
type Action func(lexeme []byte) any

// Kind is one entry in a token catalogue: the pattern that recognizes it
// and the action that turns a matched lexeme into a token value.
type Kind interface {
	Pattern() pattern.Pattern
	Action() Action
}

// Catalogue is an ordered list of token kinds. Declaration order is
// significant: it is the tie-break priority between kinds whose patterns
// can both accept the same lexeme — earlier entries win.
type Catalogue []Kind

// Extra is one (pattern, action) entry outside the catalogue proper —
// the generator facade's extras parameter. Extras are tried after every
// catalogue entry, in declaration order, and lose ties to all of them.
type Extra struct {
	Pat    pattern.Pattern
	Action Action
}

// rule is the Kind implementation Rule and Const both produce.
type rule struct {
	pat Pattern
	act Action
}

// Pattern is a local alias so rule's field can stay unexported while the
// package-level type callers see is pattern.Pattern.
type Pattern = pattern.Pattern

func (r rule) Pattern() Pattern { return r.pat }
func (r rule) Action() Action   { return r.act }

// Rule builds a Kind from a pattern and a lexeme-to-value action.
func Rule(p Pattern, act Action) Kind {
	return rule{pat: p, act: act}
}

// Const builds a Kind that always produces value, regardless of the
// matched lexeme — the catalogue's "pattern and a constant value" shape.
func Const(p Pattern, value any) Kind {
	return rule{pat: p, act: func([]byte) any { return value }}
}
