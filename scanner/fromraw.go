package scanner

import "github.com/coregx/lexgen/interval"

// FromRaw reconstructs Tables from the flattened data package gen emits
// into a generated table file: spans and targets are parallel per-state
// jagged rows (spans[i][j] labels the transition to targets[i][j]), and
// actionIndex[i] names which entry of actions resolves state i. It is
// the consumer-side half of WriteScannerTables — the counterpart that
// reattaches the action callables a generated source file cannot embed.
func FromRaw(spans [][][2]byte, targets [][]int32, actionIndex []int, actions []Action) Tables {
	rows := make([]Row, len(spans))
	for i := range spans {
		row := Row{
			Spans:   make([]interval.Interval, len(spans[i])),
			Targets: make([]StateID, len(spans[i])),
		}
		for j, sp := range spans[i] {
			row.Spans[j] = interval.Of(sp[0], sp[1])
			row.Targets[j] = StateID(targets[i][j])
		}
		rows[i] = row
	}

	resolved := make([]Action, len(actionIndex))
	for i, idx := range actionIndex {
		resolved[i] = actions[idx]
	}

	return Tables{Rows: rows, Actions: resolved}
}
