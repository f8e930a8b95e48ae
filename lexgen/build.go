// Package lexgen is the generator facade: it binds a token catalogue and
// extra (pattern, action) entries into a ready-to-run Scanner, per the
// spec's build_scanner(reject_action, catalogue, extras) -> Scanner.
package lexgen

import (
	"fmt"

	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/scanner"
	"github.com/coregx/lexgen/token"
)

// Scanner is the product of Build: an immutable, built scanner.Tables
// with the longest-match interpreter lifted to a method for convenience.
type Scanner struct {
	tables scanner.Tables
}

// Scan implements scan(cursor) -> Token against the built tables.
func (s *Scanner) Scan(input []byte) (scanner.Token, int) {
	return s.tables.Scan(input)
}

// Tables exposes the built scanner.Tables, primarily so package gen can
// render them as static Go source via WriteScannerTables.
func (s *Scanner) Tables() scanner.Tables { return s.tables }

type ruleEntry struct {
	pat token.Pattern
	act token.Action
}

// Build implements the generator facade. Catalogue entries are compiled
// before extras; within each group, declaration order is the tie-break
// priority the merged machine uses when multiple entries can accept the
// same lexeme (earlier wins, per §4.3's first-in-NFA-order rule).
func Build(reject token.Action, catalogue token.Catalogue, extras []token.Extra, opts ...GeneratorOption) (*Scanner, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if reject == nil {
		return nil, &BuildError{Kind: InvalidEntry, Message: "reject action must not be nil"}
	}
	if len(catalogue) == 0 && len(extras) == 0 {
		return nil, ErrEmptyCatalogue
	}

	entries := make([]ruleEntry, 0, len(catalogue)+len(extras))
	for i, k := range catalogue {
		if k.Action() == nil {
			return nil, &BuildError{Kind: InvalidEntry, Message: fmt.Sprintf("catalogue entry %d has a nil action", i)}
		}
		entries = append(entries, ruleEntry{pat: k.Pattern(), act: k.Action()})
	}
	for i, e := range extras {
		if e.Action == nil {
			return nil, &BuildError{Kind: InvalidEntry, Message: fmt.Sprintf("extras entry %d has a nil action", i)}
		}
		entries = append(entries, ruleEntry{pat: e.Pat, act: e.Action})
	}

	nfas := make([]nfa.NFA, len(entries))
	for i, e := range entries {
		m := nfa.Of(e.pat)
		m.SetAccept(nfa.Action(i))
		nfas[i] = m
	}
	merged := nfa.MergeAll(nfas)
	d := dfa.Of(&merged, cfg.Logger)

	resolve := func(a nfa.Action) scanner.Action {
		if a == nfa.NoAction {
			return func(lexeme []byte) scanner.Token { return reject(lexeme) }
		}
		act := entries[a].act
		return func(lexeme []byte) scanner.Token { return act(lexeme) }
	}
	tables := scanner.BuildTables(&d, resolve)
	return &Scanner{tables: tables}, nil
}
