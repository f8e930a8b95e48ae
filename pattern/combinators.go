package pattern

// Byte matches exactly the byte c.
func Byte(c byte) Pattern {
	return Pattern{kind: Single, lo: c, hi: c}
}

// Interval matches any byte in the inclusive range [min, max]. It is
// empty iff min > max; callers are free to construct an empty range,
// since emptiness propagation is the NFA builder's concern, not a
// combinator precondition.
func Interval(min, max byte) Pattern {
	return Pattern{kind: Range, lo: min, hi: max}
}

// Concat builds the concatenation of ps in order. Concat() with no
// arguments is the pattern that matches the empty string.
func Concat(ps ...Pattern) Pattern {
	subs := make([]Pattern, len(ps))
	copy(subs, ps)
	return Pattern{kind: Seq, subs: subs}
}

// Alt builds the alternation of l and r.
func Alt(l, r Pattern) Pattern {
	return Pattern{kind: Or, subs: []Pattern{l, r}}
}

// Opt builds p? — p matched zero or one times.
func Opt(p Pattern) Pattern {
	return Pattern{kind: ZeroOrOne, subs: []Pattern{p}}
}

// Star builds p* — p matched zero or more times.
func Star(p Pattern) Pattern {
	return Pattern{kind: ZeroOrMore, subs: []Pattern{p}}
}

// Plus builds p+ — p matched one or more times.
func Plus(p Pattern) Pattern {
	return Pattern{kind: OneOrMore, subs: []Pattern{p}}
}

// AtLeastN builds p{n,} — p matched n or more times.
func AtLeastN(n int, p Pattern) Pattern {
	return Pattern{kind: AtLeast, n: n, subs: []Pattern{p}}
}

// AtMostN builds p{,m} — p matched zero to m times. Panics with a
// *ConstraintError if m < 1, per the algebra's AtMost.n >= 1 precondition.
func AtMostN(m int, p Pattern) Pattern {
	if m < 1 {
		panic(&ConstraintError{Combinator: "AtMost", Message: "m must be >= 1"})
	}
	return Pattern{kind: AtMost, m: m, subs: []Pattern{p}}
}

// Between builds p{n,m} — p matched n to m times. Panics with a
// *ConstraintError if n > m.
func Between(n, m int, p Pattern) Pattern {
	if n > m {
		panic(&ConstraintError{Combinator: "Times", Message: "n must be <= m"})
	}
	return Pattern{kind: Times, n: n, m: m, subs: []Pattern{p}}
}

// Literal builds the concatenation of s's bytes, one Single pattern per
// byte, matching the exact string s.
func Literal(s string) Pattern {
	subs := make([]Pattern, len(s))
	for i := 0; i < len(s); i++ {
		subs[i] = Byte(s[i])
	}
	return Pattern{kind: Seq, subs: subs}
}
