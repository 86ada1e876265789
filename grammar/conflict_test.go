package grammar

import (
	"strings"
	"testing"
)

func TestFormatConflict(t *testing.T) {
	g := buildGrammar(t, []string{
		"s -> If E s",
		"s -> If E s Else s",
		"s -> X",
	}, "s")
	table := buildTable(t, g)
	if !table.HasConflicts() {
		t.Fatalf("expected a conflict")
	}

	line := FormatConflict(g.SymbolTable, table.Conflicts[0])
	if !strings.Contains(line, "terminal Else") {
		t.Fatalf("expected the formatted conflict to name Else, got %q", line)
	}
	if !strings.HasPrefix(line, "state ") {
		t.Fatalf("expected the formatted conflict to start with \"state \", got %q", line)
	}
}

func TestConflictListSummary(t *testing.T) {
	cl := ConflictList{
		{Kind: SRConflict},
		{Kind: SRConflict},
		{Kind: RRConflict},
	}
	sr, rr := cl.Summary()
	if sr != 2 || rr != 1 {
		t.Fatalf("expected sr=2 rr=1, got sr=%v rr=%v", sr, rr)
	}
}
