// Package dfa implements subset construction with input-alphabet
// interval partitioning: dfa_of(nfa) -> DFA, the pipeline stage between
// package nfa and package scanner.
package dfa

import (
	"fmt"

	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/nfa"
)

// StateID indexes a state within a DFA's state vector.
type StateID int32

// Transition is a labelled (consuming) edge to a target state. Per-state
// transition spans are pairwise disjoint by construction.
type Transition struct {
	Target StateID
	Span   interval.Interval
}

// State is one DFA state: zero or more pairwise-disjoint labelled
// transitions, plus an optional accept action.
type State struct {
	trans  []Transition
	action nfa.Action
}

// Transitions returns the state's outgoing transitions, sorted by span.
func (s *State) Transitions() []Transition { return s.trans }

// Action returns the state's accept action, or nfa.NoAction if the state
// does not accept.
func (s *State) Action() nfa.Action { return s.action }

// IsAccept reports whether the state carries an accept action.
func (s *State) IsAccept() bool { return s.action != nfa.NoAction }

// Step follows the transition (if any) whose span contains b, returning
// its target and true, or the zero StateID and false on no match.
func (s *State) Step(b byte) (StateID, bool) {
	for _, t := range s.trans {
		if t.Span.Contains(b) {
			return t.Target, true
		}
	}
	return 0, false
}

// DFA is a deterministic automaton over the byte alphabet, built by
// subset construction over an NFA. State 0 is always the initial state.
type DFA struct {
	states []State
}

// NumStates returns the number of states in the machine.
func (d *DFA) NumStates() int { return len(d.states) }

// Start returns the initial state, index 0.
func (d *DFA) Start() StateID { return 0 }

// State returns a pointer to the state at id, or nil if id is out of range.
func (d *DFA) State(id StateID) *State {
	if id < 0 || int(id) >= len(d.states) {
		return nil
	}
	return &d.states[id]
}

// String renders a compact summary, useful in test failure messages.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d}", len(d.states))
}
