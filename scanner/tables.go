// Package scanner implements the table-driven longest-match interpreter
// that runs over a built DFA: scan(cursor) -> Token in the spec.
package scanner

import (
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/nfa"
)

// StateID indexes a row/action within a built Tables, one-to-one with
// the dfa.StateID it was built from.
type StateID = dfa.StateID

// NoTransition is the sentinel (~0) marking the absence of a usable
// transition target: Row.step returns it when no span covers the byte,
// and package gen emits it as a constant into a generated table file.
const NoTransition StateID = ^StateID(0)

// Token is the opaque value an Action produces. The core never inspects
// it; its shape is defined entirely by the token-catalogue collaborator.
type Token any

// Action is a lexeme-to-token callable, resolved once at table-build
// time from an nfa.Action tag. Kept as a plain function pointer, never a
// closure over mutable state, so built Tables remain shared-read-only
// data with no hidden per-scan allocation.
type Action func(lexeme []byte) Token

// Row is one DFA state's jagged transition list: parallel Spans/Targets
// slices, pairwise-disjoint by construction, one entry per transition —
// as opposed to a dense 256-entry-per-state table, since most states
// only ever see a handful of distinct intervals.
type Row struct {
	Spans   []interval.Interval
	Targets []StateID
}

// step returns the target of the (at most one) transition whose span
// contains b, or NoTransition and false.
func (r *Row) step(b byte) (StateID, bool) {
	for i, span := range r.Spans {
		if span.Contains(b) {
			return r.Targets[i], true
		}
	}
	return NoTransition, false
}

// Tables is the scanner's built, immutable data: one jagged transition
// row per DFA state, plus a parallel action vector of the same length.
// Every state has an action — BuildTables substitutes the reject action
// for any DFA state that had none, so scan never needs a nil check.
type Tables struct {
	Rows    []Row
	Actions []Action

	// ActionTag carries each state's source nfa.Action (NoAction for a
	// reject state), parallel to Actions. Scan never reads it — it exists
	// only so package gen can emit a stable, declaration-order action
	// identity into generated source, since an Action closure itself
	// can't be serialized. Tables built by FromRaw leave it nil.
	ActionTag []nfa.Action
}

// BuildTables flattens a built DFA into scanner Tables. resolve maps
// each DFA state's nfa.Action tag to the callable that should run when
// scanning stops there — including nfa.NoAction, which resolve must map
// to the caller's reject action.
func BuildTables(d *dfa.DFA, resolve func(nfa.Action) Action) Tables {
	n := d.NumStates()
	rows := make([]Row, n)
	actions := make([]Action, n)
	tags := make([]nfa.Action, n)
	for i := 0; i < n; i++ {
		st := d.State(dfa.StateID(i))
		for _, tr := range st.Transitions() {
			rows[i].Spans = append(rows[i].Spans, tr.Span)
			rows[i].Targets = append(rows[i].Targets, tr.Target)
		}
		actions[i] = resolve(st.Action())
		tags[i] = st.Action()
	}
	return Tables{Rows: rows, Actions: actions, ActionTag: tags}
}
