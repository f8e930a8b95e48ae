package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/internal/sparse"
	"github.com/coregx/lexgen/nfa"
)

// epsilonClosure computes the saturating fixpoint of frontier under
// epsilon-transitions: the smallest superset of frontier closed under
// epsilon-transitions (ε-closure(S) in the spec). The result is sorted
// ascending and deduplicated so it has a single canonical representation
// regardless of visit order.
func epsilonClosure(n *nfa.NFA, frontier []nfa.StateID) []nfa.StateID {
	reached := sparse.NewSparseSet(uint32(n.NumStates()))
	stack := make([]nfa.StateID, 0, len(frontier))
	for _, id := range frontier {
		if !reached.Contains(uint32(id)) {
			reached.Insert(uint32(id))
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.State(id).Epsilons() {
			if !reached.Contains(uint32(e)) {
				reached.Insert(uint32(e))
				stack = append(stack, e)
			}
		}
	}
	out := make([]nfa.StateID, 0, reached.Size())
	for _, v := range reached.Values() {
		out = append(out, nfa.StateID(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move implements move(S, I): the union over every state s in S of every
// target t such that (s, t, J) is a labelled transition with J containing
// I. I is guaranteed by the alphabet-refinement step to be contained in
// any original span it intersected, so containment is the exact test the
// spec calls for. The result is sorted ascending and deduplicated; it is
// empty whenever no state in S has a span covering I (including, per
// invariant 4, whenever I itself is empty).
func move(n *nfa.NFA, S []nfa.StateID, want interval.Interval) []nfa.StateID {
	if want.Empty() {
		return nil
	}
	seen := sparse.NewSparseSet(uint32(n.NumStates()))
	var out []nfa.StateID
	for _, s := range S {
		for _, tr := range n.State(s).Transitions() {
			if tr.Span.ContainsInterval(want) && !seen.Contains(uint32(tr.Target)) {
				seen.Insert(uint32(tr.Target))
				out = append(out, tr.Target)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// signature produces the canonical string key for a sorted, deduplicated
// NFA-state-set, suitable as a comparable key in the ordered containers
// pass 1 and pass 2 share.
func signature(set []nfa.StateID) string {
	var b strings.Builder
	for i, id := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}
