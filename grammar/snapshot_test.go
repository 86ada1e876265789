package grammar

import (
	"testing"

	"github.com/nkym/lalrc/symbol"
)

func TestSnapshotReservesIndexZero(t *testing.T) {
	g := buildGrammar(t, []string{"s -> Id"}, "s")
	table := buildTable(t, g)
	snap := g.Snapshot(table)

	if snap.Terminals[0] != symbol.EOF {
		t.Fatalf("Terminals[0] should be $, got %v", snap.Terminals[0])
	}
	if snap.NonTerminals[0] != g.start {
		t.Fatalf("NonTerminals[0] should be the augmented start symbol")
	}
	if len(snap.Action) != snap.StateCount {
		t.Fatalf("ACTION should have one row per state")
	}
	for _, row := range snap.Action {
		if len(row) != len(snap.Terminals) {
			t.Fatalf("ACTION row width should equal len(Terminals), got %v want %v", len(row), len(snap.Terminals))
		}
	}
	for _, row := range snap.GoTo {
		if len(row) != len(snap.NonTerminals) {
			t.Fatalf("GOTO row width should equal len(NonTerminals)")
		}
	}
}

func TestSnapshotProductionSourceRendersArrow(t *testing.T) {
	g := buildGrammar(t, []string{"s -> Id"}, "s")
	table := buildTable(t, g)
	snap := g.Snapshot(table)

	found := false
	for _, p := range snap.Productions {
		if p.Source == "s -> Id" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a production rendered as \"s -> Id\", got %+v", snap.Productions)
	}
}
