package scanner

import (
	"testing"

	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/pattern"
)

// stringToken wraps a matched lexeme for assertions.
type stringToken struct {
	kind   string
	lexeme string
}

func resolveWith(byAction map[nfa.Action]string, reject string) func(nfa.Action) Action {
	return func(a nfa.Action) Action {
		kind := reject
		if name, ok := byAction[a]; ok {
			kind = name
		}
		return func(lexeme []byte) Token {
			return stringToken{kind: kind, lexeme: string(lexeme)}
		}
	}
}

func TestScanLongestMatchOverKeyword(t *testing.T) {
	// "not" (KwNot) vs (alpha)(alpha)* (Ident) -- "notation" should
	// scan as a single Ident token, not stop at "not".
	kwNot := nfa.Of(pattern.Literal("not"))
	kwNot.SetAccept(nfa.Action(0))

	ident := nfa.Of(pattern.Concat(
		pattern.Alpha(),
		pattern.Star(pattern.Alpha()),
	))
	ident.SetAccept(nfa.Action(1))

	merged := nfa.MergeAll([]nfa.NFA{kwNot, ident})
	d := dfa.Of(&merged, nil)
	tables := BuildTables(&d, resolveWith(map[nfa.Action]string{0: "KwNot", 1: "Ident"}, "Error"))

	tok, n := tables.Scan([]byte("notation"))
	st := tok.(stringToken)
	if st.kind != "Ident" || st.lexeme != "notation" || n != len("notation") {
		t.Errorf("Scan(%q) = (%+v, %d), want Ident(\"notation\"), %d", "notation", st, n, len("notation"))
	}

	tok, n = tables.Scan([]byte("not"))
	st = tok.(stringToken)
	if st.kind != "KwNot" || st.lexeme != "not" || n != 3 {
		t.Errorf("Scan(%q) = (%+v, %d), want KwNot(\"not\"), 3", "not", st, n)
	}
}

func TestScanRejectsFromState0(t *testing.T) {
	plus := nfa.Of(pattern.Byte('+'))
	plus.SetAccept(nfa.Action(0))
	d := dfa.Of(&plus, nil)
	tables := BuildTables(&d, resolveWith(map[nfa.Action]string{0: "Plus"}, "Error"))

	tok, n := tables.Scan([]byte("?"))
	st := tok.(stringToken)
	if st.kind != "Error" || st.lexeme != "" || n != 0 {
		t.Errorf("Scan(%q) = (%+v, %d), want Error(\"\"), 0", "?", st, n)
	}
}

func TestScanEmptyInput(t *testing.T) {
	plus := nfa.Of(pattern.Byte('+'))
	plus.SetAccept(nfa.Action(0))
	d := dfa.Of(&plus, nil)
	tables := BuildTables(&d, resolveWith(map[nfa.Action]string{0: "Plus"}, "Error"))

	tok, n := tables.Scan(nil)
	st := tok.(stringToken)
	if st.kind != "Error" || n != 0 {
		t.Errorf("Scan(nil) = (%+v, %d), want Error, 0", st, n)
	}
}

func TestScanFirstWinsOnAmbiguousPrefix(t *testing.T) {
	// Two rules that both fully match "ab": first-declared wins.
	first := nfa.Of(pattern.Literal("ab"))
	first.SetAccept(nfa.Action(0))
	second := nfa.Of(pattern.Literal("ab"))
	second.SetAccept(nfa.Action(1))

	merged := nfa.MergeAll([]nfa.NFA{first, second})
	d := dfa.Of(&merged, nil)
	tables := BuildTables(&d, resolveWith(map[nfa.Action]string{0: "First", 1: "Second"}, "Error"))

	tok, n := tables.Scan([]byte("ab"))
	st := tok.(stringToken)
	if st.kind != "First" || n != 2 {
		t.Errorf("Scan(%q) = (%+v, %d), want First, 2", "ab", st, n)
	}
}
