package grammar

import (
	"testing"

	"github.com/nkym/lalrc/symbol"
)

func buildTable(t *testing.T, g *Grammar) *ParsingTable {
	t.Helper()
	a, err := g.BuildLR0Automaton()
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}
	return BuildParsingTable(g, a)
}

func TestParsingTableSingleTerminalGrammar(t *testing.T) {
	g := buildGrammar(t, []string{"s -> Id"}, "s")
	table := buildTable(t, g)

	id, _ := g.SymbolTable.Find("Id")
	s, _ := g.SymbolTable.Find("s")

	// State 0 shifts on Id into the state containing [s -> Id·].
	shiftTarget := table.Action(InitialState, id)
	if !shiftTarget.IsShift() {
		t.Fatalf("ACTION[0][Id] should be a shift, got %v", shiftTarget)
	}

	// The shift target reduces production 1 (s -> Id) on $.
	reduceOnEOF := table.Action(shiftTarget.ShiftTarget(), symbol.EOF)
	if !reduceOnEOF.IsReduce() || reduceOnEOF.ReduceProduction().Int() != 1 {
		t.Fatalf("expected Reduce(1) after shifting Id, got %v", reduceOnEOF)
	}

	// GOTO[0][s] leads to the accepting state.
	gotoState, ok := table.GoTo(InitialState, s)
	if !ok {
		t.Fatalf("GOTO[0][s] should exist")
	}
	acc := table.Action(gotoState, symbol.EOF)
	if !acc.IsAccept() {
		t.Fatalf("ACTION[goto(0,s)][$] should be Accept, got %v", acc)
	}

	if table.HasConflicts() {
		t.Fatalf("an unambiguous grammar should produce no conflicts, got %v", table.Conflicts)
	}
}

func TestParsingTableExpressionGrammarHasNoConflicts(t *testing.T) {
	g := buildGrammar(t, []string{
		"e -> e Plus t",
		"e -> t",
		"t -> Num",
	}, "e")
	table := buildTable(t, g)
	if table.HasConflicts() {
		t.Fatalf("direct left recursion should be LALR(1) with no conflicts, got %v", table.Conflicts)
	}
}

func TestParsingTableDanglingElseProducesOneShiftReduceConflict(t *testing.T) {
	g := buildGrammar(t, []string{
		"s -> If E s",
		"s -> If E s Else s",
		"s -> X",
	}, "s")
	table := buildTable(t, g)

	sr, rr := table.Conflicts.Summary()
	if sr != 1 || rr != 0 {
		t.Fatalf("expected exactly one SR conflict, got sr=%v rr=%v (%v)", sr, rr, table.Conflicts)
	}

	elseSym, _ := g.SymbolTable.Find("Else")
	if table.Conflicts[0].Terminal != elseSym {
		t.Fatalf("the conflict should be on lookahead Else, got %v", table.Conflicts[0].Terminal)
	}
}

func TestParsingTableReduceReduceConflict(t *testing.T) {
	g := buildGrammar(t, []string{
		"s -> a",
		"s -> b",
		"a -> X",
		"b -> X",
	}, "s")
	table := buildTable(t, g)

	sr, rr := table.Conflicts.Summary()
	if rr != 1 || sr != 0 {
		t.Fatalf("expected exactly one RR conflict, got sr=%v rr=%v (%v)", sr, rr, table.Conflicts)
	}
}
