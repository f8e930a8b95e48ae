package dfa

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/coregx/lexgen/container/orderedmap"
	"github.com/coregx/lexgen/container/orderedset"
	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/nfa"
)

// maxStates bounds subset construction: StateID is int32, so the state
// count must fit a uint32 well before it would overflow that. Subset
// construction over a pathological pattern algebra (deeply nested Times
// counters) can in principle enumerate far more state-sets than any real
// token catalogue needs; this catches runaway growth as a builder
// invariant violation rather than silently wrapping StateID.
const maxStates = 1 << 20

// discardLogger returns a logrus.Logger whose output is silently dropped,
// the default when Of is called with a nil logger.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type pass1Transition struct {
	span   interval.Interval
	target string
}

type pass1Result struct {
	action nfa.Action
	trans  []pass1Transition
}

// Of implements dfa_of(nfa) -> DFA: subset construction over n with
// input-alphabet interval partitioning. log receives a diagnostic
// whenever a subset's promoted accept action was chosen among several
// competing NFA accept states in the same subset (first-in-NFA-order
// wins); pass nil to silently drop diagnostics.
func Of(n *nfa.NFA, log *logrus.Logger) DFA {
	if log == nil {
		log = discardLogger()
	}

	seen := orderedset.New(strings.Compare)
	results := orderedmap.New[string, pass1Result](strings.Compare)
	members := map[string][]nfa.StateID{}

	initial := epsilonClosure(n, []nfa.StateID{n.Start()})
	initialSig := signature(initial)
	seen.Add(initialSig)
	members[initialSig] = initial
	worklist := []string{initialSig}

	for len(worklist) > 0 {
		sig := worklist[0]
		worklist = worklist[1:]
		set := members[sig]

		action := promoteAction(n, set, log, sig)

		var spans []interval.Interval
		for _, s := range set {
			for _, tr := range n.State(s).Transitions() {
				spans = append(spans, tr.Span)
			}
		}
		refined := refineAlphabet(spans)

		var trans []pass1Transition
		for _, iv := range refined {
			target := epsilonClosure(n, move(n, set, iv))
			if len(target) == 0 {
				continue
			}
			tsig := signature(target)
			if !seen.Contains(tsig) {
				if conv.IntToUint32(seen.Len()) >= maxStates {
					panic(&InvariantError{Op: "Of", Message: "subset construction exceeded maxStates"})
				}
				seen.Add(tsig)
				members[tsig] = target
				worklist = append(worklist, tsig)
			}
			trans = append(trans, pass1Transition{span: iv, target: tsig})
		}

		results.Put(sig, pass1Result{action: action, trans: trans})
	}

	// Pass 2 — translate: number the NFA-state-sets, initial at 0, the
	// rest in the order they appear in seen (seen's canonical comparator
	// order, which is what makes the numbering deterministic regardless
	// of worklist traversal order).
	index := map[string]StateID{initialSig: 0}
	next := StateID(1)
	for _, sig := range seen.Values() {
		if sig == initialSig {
			continue
		}
		index[sig] = next
		next++
	}

	states := make([]State, seen.Len())
	for _, sig := range seen.Values() {
		res, _ := results.Get(sig)
		st := State{action: res.action}
		for _, t := range res.trans {
			st.trans = append(st.trans, Transition{Target: index[t.target], Span: t.span})
		}
		states[index[sig]] = st
	}

	return DFA{states: states}
}

// promoteAction picks the accept action of the lowest-indexed accepting
// NFA state in set (first-in-NFA-order wins), logging a diagnostic if
// more than one accepting state is present — an ambiguous rule, since
// set is reachable from the same prefix but multiple catalogue entries
// would claim to accept it.
func promoteAction(n *nfa.NFA, set []nfa.StateID, log *logrus.Logger, sig string) nfa.Action {
	action := nfa.NoAction
	competing := 0
	for _, id := range set {
		if st := n.State(id); st.IsAccept() {
			competing++
			if action == nfa.NoAction {
				action = st.Action()
			}
		}
	}
	if competing > 1 {
		log.WithFields(logrus.Fields{
			"state_set": sig,
			"competing": competing,
			"chosen":    int32(action),
		}).Warn("ambiguous accept set: multiple rules match the same lexeme, first-declared rule wins")
	}
	return action
}
