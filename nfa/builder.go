package nfa

import (
	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/pattern"
)

// appendState appends a fresh state and returns its index.
func (n *NFA) appendState(s State) StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, s)
	return id
}

// prependState inserts s at index 0, shifting every existing target
// reference by one. s's own targets are taken to already be expressed in
// post-shift coordinates, since the caller computes them from indices it
// already knows.
func (n *NFA) prependState(s State) {
	for i := range n.states {
		st := &n.states[i]
		for j := range st.epsilons {
			st.epsilons[j]++
		}
		for j := range st.trans {
			st.trans[j].Target++
		}
	}
	n.states = append([]State{s}, n.states...)
}

// splice appends other's states after mine, shifting its internal
// indices so they remain self-consistent, and returns the shift (the
// index other's own state 0 now occupies in the combined machine).
func (n *NFA) splice(other NFA) StateID {
	shift := StateID(len(n.states))
	for _, s := range other.states {
		ns := State{action: s.action}
		for _, e := range s.epsilons {
			ns.epsilons = append(ns.epsilons, e+shift)
		}
		for _, t := range s.trans {
			ns.trans = append(ns.trans, Transition{Target: t.Target + shift, Span: t.Span})
		}
		n.states = append(n.states, ns)
	}
	return shift
}

// join splices other onto the end of n, merging n's former last state
// with other's initial state: since a machine's final state is always a
// dead end with no outgoing edges of its own, the former-final slot is
// dropped before splicing, so other's state 0 lands in that slot and
// every existing edge that already targeted the former final
// transparently continues into other's machine. The result has one state
// fewer than the two machines together, and the unique-final-is-last
// invariant holds again, now naming other's (shifted) final state.
func (n *NFA) join(other NFA) {
	formerFinal := StateID(len(n.states) - 1)
	n.states = n.states[:formerFinal]
	n.splice(other)
}

// extend prepends a fresh initial and appends a fresh final, connected
// to the machine's original endpoints by epsilon-transitions. This
// isolates the machine so that the back- and skip-edges a quantifier
// adds can't create spurious paths into or out of the middle of it.
func (n *NFA) extend() {
	oldFinal := StateID(len(n.states) - 1)
	n.prependState(State{epsilons: []StateID{1}})
	newFinal := n.appendState(State{})
	n.states[oldFinal+1].epsilons = append(n.states[oldFinal+1].epsilons, newFinal)
}

// oldInitAfterExtend and finalPredAfterExtend locate, after a call to
// extend, the original machine's initial state and the state with the
// epsilon edge into the new final (its immediate predecessor) — exactly
// the two anchor points the quantifier constructions splice back/skip
// edges onto.
func (n *NFA) oldInitAfterExtend() StateID   { return 1 }
func (n *NFA) finalPredAfterExtend() StateID { return StateID(len(n.states) - 2) }
func (n *NFA) newInitAfterExtend() StateID   { return 0 }
func (n *NFA) newFinalAfterExtend() StateID  { return StateID(len(n.states) - 1) }

func atomic(span interval.Interval) NFA {
	return NFA{states: []State{
		{trans: []Transition{{Target: 1, Span: span}}},
		{},
	}}
}

func epsilonOnly() NFA {
	return NFA{states: []State{
		{epsilons: []StateID{1}},
		{},
	}}
}

// alt builds the fresh-initial/fresh-final alternation construction:
// a new initial epsilon-branches into both sub-machines' initials, and
// both sub-machines' finals epsilon-join a new final.
func alt(l, r NFA) NFA {
	var out NFA
	shiftL := out.splice(l)
	shiftR := out.splice(r)
	lFinal := shiftL + StateID(len(l.states)) - 1
	rFinal := shiftR + StateID(len(r.states)) - 1
	out.prependState(State{epsilons: []StateID{shiftL + 1, shiftR + 1}})
	newFinal := out.appendState(State{})
	out.states[lFinal+1].epsilons = append(out.states[lFinal+1].epsilons, newFinal)
	out.states[rFinal+1].epsilons = append(out.states[rFinal+1].epsilons, newFinal)
	return out
}

// Of converts a pattern into a Thompson epsilon-NFA: nfa_of(pattern) in
// the spec. The result has state 0 as its unique initial state and its
// last state as its unique accept state (without an action yet tagged —
// callers that are building one NFA per catalogue rule call SetAccept
// afterward).
func Of(p pattern.Pattern) NFA {
	switch p.Kind() {
	case pattern.Single, pattern.Range:
		lo, hi := p.Bounds()
		return atomic(interval.Of(lo, hi))

	case pattern.Seq:
		subs := p.Subs()
		if len(subs) == 0 {
			return epsilonOnly()
		}
		out := Of(subs[0])
		for _, s := range subs[1:] {
			out.join(Of(s))
		}
		return out

	case pattern.Or:
		subs := p.Subs()
		return alt(Of(subs[0]), Of(subs[1]))

	case pattern.ZeroOrOne:
		out := Of(p.Subs()[0])
		out.extend()
		out.states[out.newInitAfterExtend()].epsilons = append(
			out.states[out.newInitAfterExtend()].epsilons, out.newFinalAfterExtend())
		return out

	case pattern.ZeroOrMore:
		out := Of(p.Subs()[0])
		out.extend()
		oldInit := out.oldInitAfterExtend()
		finalPred := out.finalPredAfterExtend()
		newInit := out.newInitAfterExtend()
		newFinal := out.newFinalAfterExtend()
		out.states[newInit].epsilons = append(out.states[newInit].epsilons, newFinal)
		out.states[finalPred].epsilons = append(out.states[finalPred].epsilons, oldInit)
		return out

	case pattern.OneOrMore:
		out := Of(p.Subs()[0])
		out.extend()
		oldInit := out.oldInitAfterExtend()
		finalPred := out.finalPredAfterExtend()
		out.states[finalPred].epsilons = append(out.states[finalPred].epsilons, oldInit)
		return out

	case pattern.AtLeast:
		n := p.N()
		sub := p.Subs()[0]
		if n <= 0 {
			return Of(pattern.Star(sub))
		}
		if n == 1 {
			return Of(pattern.Plus(sub))
		}
		// n-1 plain copies of p, then a final copy that becomes p+.
		out := Of(sub)
		for i := 2; i < n; i++ {
			out.join(Of(sub))
		}
		out.join(Of(pattern.Plus(sub)))
		return out

	case pattern.AtMost:
		m := p.M()
		sub := p.Subs()[0]
		out := Of(pattern.Opt(sub))
		for i := 1; i < m; i++ {
			out.join(Of(pattern.Opt(sub)))
		}
		return out

	case pattern.Times:
		n, m := p.N(), p.M()
		sub := p.Subs()[0]
		var out NFA
		if n == 0 {
			out = epsilonOnly()
		} else {
			out = Of(sub)
			for i := 1; i < n; i++ {
				out.join(Of(sub))
			}
		}
		for i := 0; i < m-n; i++ {
			out.join(Of(pattern.Opt(sub)))
		}
		return out

	default:
		panic(&InvariantError{Op: "Of", Message: "unrecognized pattern kind"})
	}
}

// MergeAll implements merge_nfas: a fresh initial state epsilon-branches
// into every child's initial state. Each child's accept state(s) and
// actions are preserved verbatim, so the result has one initial state
// and, in general, many accept states — callers must not rely on Final
// after this.
func MergeAll(nfas []NFA) NFA {
	var out NFA
	starts := make([]StateID, len(nfas))
	for i, child := range nfas {
		starts[i] = out.splice(child)
	}
	eps := make([]StateID, len(starts))
	for i, s := range starts {
		eps[i] = s + 1
	}
	out.prependState(State{epsilons: eps})
	return out
}
