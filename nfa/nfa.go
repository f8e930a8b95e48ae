// Package nfa implements Thompson-style construction of an epsilon-NFA
// from the pattern algebra in package pattern, plus merging many rule
// NFAs into one multi-accept machine (nfa_of / merge_nfas in the spec).
package nfa

import (
	"fmt"

	"github.com/coregx/lexgen/interval"
)

// StateID indexes a state within an NFA's state vector.
type StateID int32

// InvalidState marks the absence of a state reference.
const InvalidState StateID = -1

// Action is an opaque, equality-comparable tag identifying which
// catalogue entry accepted at a given state. The core never invokes an
// Action itself — that happens one layer up, in the generator facade,
// once Action values are resolved to bytes-to-token callables.
type Action int32

// NoAction marks a state that is not an accept state.
const NoAction Action = -1

// Transition is a labelled (consuming) edge to a target state.
type Transition struct {
	Target StateID
	Span   interval.Interval
}

// State is one NFA state: zero or more epsilon-transitions, zero or more
// labelled transitions, and an optional accept action.
type State struct {
	epsilons []StateID
	trans    []Transition
	action   Action
}

// Epsilons returns the state's epsilon-transition targets.
func (s *State) Epsilons() []StateID { return s.epsilons }

// Transitions returns the state's labelled transitions.
func (s *State) Transitions() []Transition { return s.trans }

// Action returns the state's accept action, or NoAction if it is not an
// accept state.
func (s *State) Action() Action { return s.action }

// IsAccept reports whether the state carries an accept action.
func (s *State) IsAccept() bool { return s.action != NoAction }

// NFA is an epsilon-NFA over the byte alphabet. Before MergeAll is
// applied, state 0 is the unique initial state and the last state is
// the unique accept state (Start/Final assume this). After merging, the
// result has one initial state and potentially many accept states, and
// Final no longer names a single state — use State(id).IsAccept instead.
type NFA struct {
	states []State
}

// NumStates returns the number of states in the machine.
func (n *NFA) NumStates() int { return len(n.states) }

// State returns a pointer to the state at id, or nil if id is out of range.
func (n *NFA) State(id StateID) *State {
	if id < 0 || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// Start returns the unique initial state, index 0.
func (n *NFA) Start() StateID { return 0 }

// Final returns the unique accept state of a single-pattern NFA (the
// last state). Only meaningful before MergeAll is applied.
func (n *NFA) Final() StateID { return StateID(len(n.states) - 1) }

// SetAccept tags the machine's unique final state (per Final) with
// action. Used by callers that build one NFA per catalogue rule and then
// need to attach the rule's action before merging.
func (n *NFA) SetAccept(action Action) {
	n.states[n.Final()].action = action
}

// String renders a compact summary, useful in test failure messages.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d}", len(n.states))
}
