// Package tester runs a directory of grammar test cases — a source
// text paired with its expected parse tree — through a freshly built
// grammar.Snapshot, adapting the teacher's tester package (which
// exercised a compiled driver.Grammar) to run directly against the
// in-memory Snapshot the CLI's --test flag has on hand before any code
// has been emitted.
package tester

import (
	"github.com/nkym/lalrc/driver"
	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

// SnapshotTable adapts a grammar.Snapshot to driver.Table directly,
// without the compaction codegen applies before emitting a standalone
// package: --test runs once, in-process, so the dense grid is cheap
// enough to index without compressor's row-deduplication.
type SnapshotTable struct {
	snap             *grammar.Snapshot
	terminalNames    []string
	nonTerminalNames []string
	lhs              []int
	rhsLen           []int
}

// NewTable builds a SnapshotTable over snap, naming its columns from
// symtab.
func NewTable(snap *grammar.Snapshot, symtab *symbol.Table) *SnapshotTable {
	name := func(s symbol.Symbol) string {
		n, _ := symtab.ToText(s)
		return n
	}

	termNames := make([]string, len(snap.Terminals))
	for i, s := range snap.Terminals {
		termNames[i] = name(s)
	}
	ntNames := make([]string, len(snap.NonTerminals))
	for i, s := range snap.NonTerminals {
		ntNames[i] = name(s)
	}

	ntIndex := make(map[symbol.Symbol]int, len(snap.NonTerminals))
	for i, s := range snap.NonTerminals {
		ntIndex[s] = i
	}
	lhs := make([]int, len(snap.Productions))
	rhsLen := make([]int, len(snap.Productions))
	for _, p := range snap.Productions {
		lhs[p.Num] = ntIndex[p.LHS]
		rhsLen[p.Num] = len(p.RHS)
	}

	return &SnapshotTable{
		snap:             snap,
		terminalNames:    termNames,
		nonTerminalNames: ntNames,
		lhs:              lhs,
		rhsLen:           rhsLen,
	}
}

var _ driver.Table = (*SnapshotTable)(nil)

func (t *SnapshotTable) Action(state, terminal int) int {
	return int(t.snap.Action[state][terminal])
}

func (t *SnapshotTable) GoTo(state, nonterminal int) int {
	return t.snap.GoTo[state][nonterminal]
}

func (t *SnapshotTable) LHS(prod int) int                       { return t.lhs[prod] }
func (t *SnapshotTable) RHSLen(prod int) int                     { return t.rhsLen[prod] }
func (t *SnapshotTable) TerminalCount() int                      { return len(t.terminalNames) }
func (t *SnapshotTable) TerminalName(terminal int) string        { return t.terminalNames[terminal] }
func (t *SnapshotTable) NonTerminalName(nonterminal int) string  { return t.nonTerminalNames[nonterminal] }
func (t *SnapshotTable) EOF() int                                { return 0 }

// TerminalNames returns the table's terminal columns in order, for
// building a Lexer over the same grammar.
func (t *SnapshotTable) TerminalNames() []string {
	return t.terminalNames
}
