package report

import (
	"fmt"
	"io"

	"github.com/nkym/lalrc/grammar"
)

// Analysis is a grammar-complexity summary, grounded in the original
// tool's G4Utils::analyze_grammar (production/symbol counts), expanded
// with a couple of details the ANTLR4-flavored --analyze flag would
// plausibly also want: state and conflict counts, the longest
// production, and whether the grammar has direct left or right
// recursion anywhere.
type Analysis struct {
	Productions   int
	Terminals     int
	NonTerminals  int
	States        int
	Conflicts     int
	LongestRHS    int
	HasLeftRecur  bool
	HasRightRecur bool
}

// Analyze computes an Analysis from a built grammar and its table.
func Analyze(g *grammar.Grammar, snap *grammar.Snapshot) Analysis {
	a := Analysis{
		Productions:  len(snap.Productions),
		Terminals:    g.SymbolTable.TerminalCount(),
		NonTerminals: g.SymbolTable.NonTerminalCount(),
		States:       snap.StateCount,
		Conflicts:    len(snap.Conflicts),
	}

	for _, p := range snap.Productions {
		if len(p.RHS) > a.LongestRHS {
			a.LongestRHS = len(p.RHS)
		}
		if len(p.RHS) > 0 && p.RHS[0] == p.LHS {
			a.HasLeftRecur = true
		}
		if len(p.RHS) > 0 && p.RHS[len(p.RHS)-1] == p.LHS {
			a.HasRightRecur = true
		}
	}

	return a
}

// RenderAnalysis writes a human-readable Analysis, per --analyze.
func RenderAnalysis(w io.Writer, a Analysis) error {
	_, err := fmt.Fprintf(w, `Productions:    %v
Terminals:      %v
Nonterminals:   %v
States:         %v
Conflicts:      %v
Longest RHS:    %v
Left recursion: %v
Right recursion:%v
`, a.Productions, a.Terminals, a.NonTerminals, a.States, a.Conflicts, a.LongestRHS, a.HasLeftRecur, a.HasRightRecur)
	return err
}
