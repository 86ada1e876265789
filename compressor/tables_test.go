package compressor

import (
	"testing"

	"github.com/nkym/lalrc/grammar"
)

func TestCompressActionDeduplicatesRows(t *testing.T) {
	rows := [][]grammar.Action{
		{grammar.ActionError, grammar.ShiftAction(2)},
		{grammar.ActionError, grammar.ShiftAction(2)},
		{grammar.ActionAccept, grammar.ActionError},
	}
	tab, err := CompressAction(rows)
	if err != nil {
		t.Fatalf("CompressAction: %v", err)
	}
	for r, row := range rows {
		for c, want := range row {
			got, err := tab.Lookup(r, c)
			if err != nil {
				t.Fatalf("Lookup(%v,%v): %v", r, c, err)
			}
			if got != int(want) {
				t.Fatalf("Lookup(%v,%v) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestCompressGoToRoundTrips(t *testing.T) {
	rows := [][]int{
		{-1, 4},
		{-1, -1},
		{5, -1},
	}
	tab, err := CompressGoTo(rows)
	if err != nil {
		t.Fatalf("CompressGoTo: %v", err)
	}
	for r, row := range rows {
		for c, want := range row {
			got, err := tab.Lookup(r, c)
			if err != nil {
				t.Fatalf("Lookup(%v,%v): %v", r, c, err)
			}
			if got != want {
				t.Fatalf("Lookup(%v,%v) = %v, want %v", r, c, got, want)
			}
		}
	}
}
