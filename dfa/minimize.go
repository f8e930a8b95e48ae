package dfa

import (
	"strconv"
	"strings"

	"github.com/coregx/lexgen/interval"
)

// Minimize implements the optional, separately-invoked DFA minimization
// post-pass: a pure function from a DFA to an equivalent, state-minimal
// DFA. It is never called automatically by Of or the generator facade —
// minimization is an optional pass callers opt into, not a guarantee of
// the pipeline.
//
// It is a Moore-style partition refinement: states start grouped by
// accept action, then groups are repeatedly split whenever two states in
// the same group step to different groups on some byte, until the
// partition stops changing. A common refinement of every state's
// transition spans (the same alphabet-refinement algorithm subset
// construction uses) gives every state's behavior a shared alphabet to
// compare against.
func Minimize(d *DFA) DFA {
	n := d.NumStates()
	if n == 0 {
		return DFA{}
	}

	group := make([]int, n)
	groupOf := map[int32]int{}
	for i := 0; i < n; i++ {
		key := int32(d.states[i].action)
		g, ok := groupOf[key]
		if !ok {
			g = len(groupOf)
			groupOf[key] = g
		}
		group[i] = g
	}

	var allSpans []interval.Interval
	for i := 0; i < n; i++ {
		for _, t := range d.states[i].trans {
			allSpans = append(allSpans, t.Span)
		}
	}
	alphabet := refineAlphabet(allSpans)

	for {
		sigToGroup := map[string]int{}
		next := make([]int, n)
		for i := 0; i < n; i++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(group[i]))
			for _, iv := range alphabet {
				b.WriteByte('|')
				if tgt, ok := d.states[i].Step(iv.Min); ok {
					b.WriteString(strconv.Itoa(group[tgt]))
				} else {
					b.WriteByte('-')
				}
			}
			sig := b.String()
			g, ok := sigToGroup[sig]
			if !ok {
				g = len(sigToGroup)
				sigToGroup[sig] = g
			}
			next[i] = g
		}
		stable := len(sigToGroup) == countGroups(group)
		group = next
		if stable {
			break
		}
	}

	return translateGroups(d, group)
}

func countGroups(group []int) int {
	max := -1
	for _, g := range group {
		if g > max {
			max = g
		}
	}
	return max + 1
}

// translateGroups builds the minimized DFA from a converged partition,
// renumbering groups so the group containing the original start state
// becomes state 0.
func translateGroups(d *DFA, group []int) DFA {
	finalIndex := map[int]StateID{group[0]: 0}
	next := StateID(1)
	for i := range d.states {
		if _, ok := finalIndex[group[i]]; !ok {
			finalIndex[group[i]] = next
			next++
		}
	}

	out := make([]State, len(finalIndex))
	done := make([]bool, len(finalIndex))
	for i := range d.states {
		fi := finalIndex[group[i]]
		if done[fi] {
			continue
		}
		done[fi] = true
		st := State{action: d.states[i].action}
		for _, t := range d.states[i].trans {
			st.trans = append(st.trans, Transition{
				Target: finalIndex[group[t.Target]],
				Span:   t.Span,
			})
		}
		out[fi] = st
	}
	return DFA{states: out}
}
