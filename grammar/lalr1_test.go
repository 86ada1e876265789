package grammar

import (
	"testing"

	"github.com/nkym/lalrc/symbol"
)

func TestAssignLookaheadsAugmentedItemIsEOF(t *testing.T) {
	g := buildGrammar(t, []string{"s -> Id"}, "s")
	a, err := g.BuildLR0Automaton()
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}

	for _, la := range g.AssignLookaheads(a.State(InitialState)) {
		if !la.Item.IsAugmented {
			continue
		}
		if la.Item.IsComplete {
			t.Fatalf("state 0's augmented item should not be complete")
		}
	}

	found := false
	for _, s := range a.States() {
		for _, la := range g.AssignLookaheads(s) {
			if !la.Item.IsAugmented || !la.Item.IsComplete {
				continue
			}
			found = true
			if _, ok := la.Lookaheads[symbol.EOF]; !ok || len(la.Lookaheads) != 1 {
				t.Fatalf("the completed augmented item should have lookahead {$}, got %v", la.Lookaheads)
			}
		}
	}
	if !found {
		t.Fatalf("expected a state containing the completed augmented item [start' -> start·]")
	}
}

func TestAssignLookaheadsCompleteItemUsesFollow(t *testing.T) {
	g := buildGrammar(t, []string{
		"e -> e Plus t",
		"e -> t",
		"t -> Num",
	}, "e")
	a, err := g.BuildLR0Automaton()
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}

	t_, _ := g.SymbolTable.Find("t")
	found := false
	for _, s := range a.States() {
		for _, la := range g.AssignLookaheads(s) {
			if !la.Item.IsComplete || la.Item.IsAugmented {
				continue
			}
			p, _ := g.ProductionByID(la.Item.prod)
			if p.LHS != t_ {
				continue
			}
			found = true
			follow := g.Follow(t_)
			for sym := range la.Lookaheads {
				if _, ok := follow[sym]; !ok {
					t.Fatalf("lookahead %v of complete t-item should be in FOLLOW(t)", sym)
				}
			}
		}
	}
	if !found {
		t.Fatalf("expected to find a complete item for production t -> Num")
	}
}

func TestAssignLookaheadsShiftOnTerminalIsSingleton(t *testing.T) {
	g := buildGrammar(t, []string{"s -> Id"}, "s")
	a, err := g.BuildLR0Automaton()
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}

	id, _ := g.SymbolTable.Find("Id")
	for _, la := range g.AssignLookaheads(a.State(InitialState)) {
		if la.Item.IsComplete || la.Item.NextSymbol != id {
			continue
		}
		if len(la.Lookaheads) != 1 {
			t.Fatalf("a shiftable item on a terminal should have a singleton lookahead")
		}
		if _, ok := la.Lookaheads[id]; !ok {
			t.Fatalf("expected lookahead {Id}, got %v", la.Lookaheads)
		}
	}
}
