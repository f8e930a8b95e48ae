// Command lexgen is a thin go-generate-style driver: it builds a
// scanner from a fixed demonstration catalogue and renders its tables
// to a standalone .go file via gen.WriteScannerTables. It is not a
// general CLI surface over the core — the core has none, by design —
// it is the same few lines a consuming package's own //go:generate
// directive would run over its own catalogue.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/coregx/lexgen/gen"
	"github.com/coregx/lexgen/lexgen"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

func demoCatalogue() token.Catalogue {
	ident := pattern.Concat(
		pattern.Alt(pattern.Byte('_'), pattern.Alpha()),
		pattern.Star(pattern.Alt(pattern.AlphaNumeric(), pattern.Byte('_'))),
	)
	integer := pattern.Concat(pattern.Opt(pattern.Byte('-')), pattern.Plus(pattern.Digit()))

	return token.Catalogue{
		token.Const(pattern.Byte('+'), "Plus"),
		token.Const(pattern.Byte('-'), "Minus"),
		token.Const(pattern.Literal(".."), "DotDot"),
		token.Const(pattern.Literal("not"), "KwNot"),
		token.Const(pattern.Literal("if"), "KwIf"),
		token.Rule(ident, func(lexeme []byte) any { return "Ident(" + string(lexeme) + ")" }),
		token.Rule(integer, func(lexeme []byte) any {
			n, _ := strconv.Atoi(string(lexeme))
			return fmt.Sprintf("Int(%d)", n)
		}),
	}
}

func main() {
	out := flag.String("out", "tables_gen.go", "output path for the generated table file")
	pkg := flag.String("pkg", "tables", "package name of the generated table file")
	flag.Parse()

	reject := func(lexeme []byte) any { return "Error(" + string(lexeme) + ")" }
	scn, err := lexgen.Build(reject, demoCatalogue(), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lexgen: build scanner:", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lexgen: create output:", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := gen.WriteScannerTables(f, *pkg, scn.Tables()); err != nil {
		fmt.Fprintln(os.Stderr, "lexgen: write tables:", err)
		os.Exit(1)
	}
}
