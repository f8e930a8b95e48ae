// Package gen renders built scanner.Tables as static Go source, grounded
// on KromDaniel/regengo's internal/compiler package — a Go regex-to-Go
// code generator in the same retrieved corpus that emits its DFA
// transition tables the same way, with github.com/dave/jennifer/jen.
package gen

import (
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/lexgen/scanner"
)

// WriteScannerTables renders tables as a jennifer-generated Go source
// file into w: one package-level var for the spans of every state's
// transition row, one for their targets, and one naming which action
// each state resolves to. This is the §9 design-note-(b) path — a
// consuming program can `go generate` this file once and reconstruct a
// scanner.Tables with scanner.FromRaw at init time, paying no NFA/DFA
// construction cost at process start.
//
// Action callables themselves are never emitted — a generated source
// file can't embed a Go closure — so the emitted ActionIndex only names,
// by position, which entry of a caller-supplied []scanner.Action slice
// backs each state; FromRaw does the final assembly.
func WriteScannerTables(w io.Writer, pkg string, tables scanner.Tables) error {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by lexgen/gen. DO NOT EDIT.")

	f.Const().Id("NoTransition").Op("=").Lit(int32(scanner.NoTransition))

	spanRows := make([]jen.Code, len(tables.Rows))
	targetRows := make([]jen.Code, len(tables.Rows))
	for i, row := range tables.Rows {
		spanEntries := make([]jen.Code, len(row.Spans))
		targetEntries := make([]jen.Code, len(row.Targets))
		for j, span := range row.Spans {
			spanEntries[j] = jen.Index(jen.Lit(2)).Byte().Values(jen.Lit(span.Min), jen.Lit(span.Max))
			targetEntries[j] = jen.Lit(int32(row.Targets[j]))
		}
		spanRows[i] = jen.Index().Index(jen.Lit(2)).Byte().Values(spanEntries...)
		targetRows[i] = jen.Index().Int32().Values(targetEntries...)
	}

	f.Comment("Spans holds, per state, the disjoint byte intervals its transitions are labelled with.")
	f.Var().Id("Spans").Op("=").Index().Index().Index(jen.Lit(2)).Byte().Values(spanRows...)

	f.Comment("Targets holds, per state, the transition target parallel to the same-index entry in Spans.")
	f.Var().Id("Targets").Op("=").Index().Index().Int32().Values(targetRows...)

	// ActionIndex[i] = int(tables.ActionTag[i]) + 1: the reject state(s)
	// carry nfa.NoAction (-1), shifted to 0; state i's entry shifted to
	// k+1 names catalogue/extras declaration entry k. A caller pairs this
	// with an actions slice laid out [reject, entry0, entry1, ...] in the
	// same declaration order it originally passed to lexgen.Build.
	actionIndex := make([]jen.Code, len(tables.ActionTag))
	for i, tag := range tables.ActionTag {
		actionIndex[i] = jen.Lit(int(tag) + 1)
	}
	f.Comment("ActionIndex[i]+0 names the entry of a caller-supplied []scanner.Action slice resolving state i: 0 is the reject action, k+1 is declaration entry k.")
	f.Var().Id("ActionIndex").Op("=").Index().Int().Values(actionIndex...)

	return f.Render(w)
}
