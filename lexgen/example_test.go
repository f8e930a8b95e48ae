package lexgen_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/lexgen/lexgen"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

// Token value types for the worked example in the spec's testable
// properties: Plus, Minus, DotDot, KwNot, KwIf, Ident, Int, Float, Error.
type (
	plusTok   struct{}
	minusTok  struct{}
	dotDotTok struct{}
	kwNotTok  struct{}
	kwIfTok   struct{}
	identTok  struct{ s string }
	intTok    struct{ n int }
	floatTok  struct{ x float64 }
	errorTok  struct{ lexeme string }
)

func ident() token.Pattern {
	start := pattern.Alt(pattern.Byte('_'), pattern.Alpha())
	cont := pattern.Alt(pattern.AlphaNumeric(), pattern.Byte('_'))
	return pattern.Concat(start, pattern.Star(cont))
}

func intPattern() token.Pattern {
	return pattern.Concat(pattern.Opt(pattern.Byte('-')), pattern.Plus(pattern.Digit()))
}

func floatPattern() token.Pattern {
	exp := pattern.Concat(
		pattern.Alt(pattern.Byte('e'), pattern.Byte('E')),
		pattern.Opt(pattern.Alt(pattern.Byte('+'), pattern.Byte('-'))),
		pattern.Plus(pattern.Digit()),
	)
	withDot := pattern.Concat(pattern.Star(pattern.Digit()), pattern.Byte('.'), pattern.Plus(pattern.Digit()), pattern.Opt(exp))
	withExpOnly := pattern.Concat(pattern.Plus(pattern.Digit()), exp)
	return pattern.Concat(pattern.Opt(pattern.Byte('-')), pattern.Alt(withDot, withExpOnly))
}

func buildExampleScanner(t *testing.T) *lexgen.Scanner {
	t.Helper()
	catalogue := token.Catalogue{
		token.Const(pattern.Byte('+'), plusTok{}),
		token.Const(pattern.Byte('-'), minusTok{}),
		token.Const(pattern.Literal(".."), dotDotTok{}),
		token.Const(pattern.Literal("not"), kwNotTok{}),
		token.Const(pattern.Literal("if"), kwIfTok{}),
		token.Rule(ident(), func(lexeme []byte) any { return identTok{s: string(lexeme)} }),
		token.Rule(intPattern(), func(lexeme []byte) any {
			n, err := strconv.Atoi(string(lexeme))
			require.NoError(t, err)
			return intTok{n: n}
		}),
		token.Rule(floatPattern(), func(lexeme []byte) any {
			x, err := strconv.ParseFloat(string(lexeme), 64)
			require.NoError(t, err)
			return floatTok{x: x}
		}),
	}
	reject := func(lexeme []byte) any { return errorTok{lexeme: string(lexeme)} }

	s, err := lexgen.Build(reject, catalogue, nil)
	require.NoError(t, err)
	return s
}

func TestWorkedExampleScenarios(t *testing.T) {
	s := buildExampleScanner(t)

	tests := []struct {
		input string
		want  any
	}{
		{"+", plusTok{}},
		{"..", dotDotTok{}},
		{"not", kwNotTok{}},
		{"notation", identTok{s: "notation"}},
		{"iffy", identTok{s: "iffy"}},
		{"-23", intTok{n: -23}},
		{"-02.3", floatTok{x: -2.3}},
		{"10E-3", floatTok{x: 0.010}},
	}
	for _, tt := range tests {
		tok, n := s.Scan([]byte(tt.input))
		assert.Equal(t, tt.want, tok, "Scan(%q)", tt.input)
		assert.Equal(t, len(tt.input), n, "Scan(%q) consumed", tt.input)
	}
}

func TestWorkedExampleRejectsFromState0(t *testing.T) {
	s := buildExampleScanner(t)
	tok, n := s.Scan([]byte("?"))
	assert.Equal(t, errorTok{lexeme: ""}, tok)
	assert.Equal(t, 0, n)
}

func TestBuildRejectsNilRejectAction(t *testing.T) {
	_, err := lexgen.Build(nil, token.Catalogue{token.Const(pattern.Byte('+'), plusTok{})}, nil)
	require.Error(t, err)
}

func TestBuildRejectsEmptyCatalogue(t *testing.T) {
	reject := func(lexeme []byte) any { return errorTok{lexeme: string(lexeme)} }
	_, err := lexgen.Build(reject, nil, nil)
	require.ErrorIs(t, err, lexgen.ErrEmptyCatalogue)
}
