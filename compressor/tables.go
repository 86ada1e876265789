package compressor

import "github.com/nkym/lalrc/grammar"

// FlattenAction turns a grammar.Snapshot's ACTION grid into the flat
// []int row-major form OriginalTable expects, so it can be compressed
// with the same row-deduplication/row-displacement machinery the
// teacher built for its own dense parser tables.
func FlattenAction(rows [][]grammar.Action) (entries []int, colCount int) {
	if len(rows) == 0 {
		return nil, 0
	}
	colCount = len(rows[0])
	entries = make([]int, 0, len(rows)*colCount)
	for _, row := range rows {
		for _, a := range row {
			entries = append(entries, int(a))
		}
	}
	return entries, colCount
}

// FlattenGoTo turns a grammar.Snapshot's GOTO grid (already ints, -1
// for "no edge") into flat row-major form.
func FlattenGoTo(rows [][]int) (entries []int, colCount int) {
	if len(rows) == 0 {
		return nil, 0
	}
	colCount = len(rows[0])
	entries = make([]int, 0, len(rows)*colCount)
	for _, row := range rows {
		entries = append(entries, row...)
	}
	return entries, colCount
}

// CompressAction row-deduplicates an ACTION grid: many LALR(1) states
// share the same error row, so UniqueEntriesTable typically shrinks
// the emitted table considerably without touching lookup semantics.
func CompressAction(rows [][]grammar.Action) (*UniqueEntriesTable, error) {
	entries, colCount := FlattenAction(rows)
	orig, err := NewOriginalTable(entries, colCount)
	if err != nil {
		return nil, err
	}
	tab := NewUniqueEntriesTable()
	if err := tab.Compress(orig); err != nil {
		return nil, err
	}
	return tab, nil
}

// CompressGoTo row-displaces a GOTO grid, which is typically very
// sparse (a state only has GOTO edges for the nonterminals it can
// shift through), using ForbiddenValue-marked bounds so a wrong
// lookup is detectable rather than silently returning another state's
// entry.
func CompressGoTo(rows [][]int) (*RowDisplacementTable, error) {
	entries, colCount := FlattenGoTo(rows)
	orig, err := NewOriginalTable(entries, colCount)
	if err != nil {
		return nil, err
	}
	tab := NewRowDisplacementTable(-1)
	if err := tab.Compress(orig); err != nil {
		return nil, err
	}
	return tab, nil
}
