package tester

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

func buildSingleTerminalSnapshot(t *testing.T) (*grammar.Snapshot, *symbol.Table) {
	t.Helper()
	symtab := symbol.NewTable()
	g := grammar.NewGrammar(symtab)

	s, _ := symtab.InternNonTerminal("s")
	id, _ := symtab.InternTerminal("Id", "")
	if _, err := g.AddProduction(s, []symbol.Symbol{id}); err != nil {
		t.Fatalf("AddProduction: %v", err)
	}
	if err := g.SetStart(s); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if err := g.Augment(); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	a, err := g.BuildLR0Automaton()
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}
	table := grammar.BuildParsingTable(g, a)
	return g.Snapshot(table), symtab
}

func TestListTestCasesPairsFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.tree"), []byte("s\n└─ Id \"hello\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cases, err := ListTestCases(dir)
	if err != nil {
		t.Fatalf("ListTestCases: %v", err)
	}
	if len(cases) != 1 || cases[0].Name != "a" {
		t.Fatalf("unexpected cases: %+v", cases)
	}
}

func TestListTestCasesRequiresMatchingTreeFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "orphan.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ListTestCases(dir); err == nil {
		t.Fatalf("expected an error for a .txt file with no matching .tree file")
	}
}

func TestRunReportsPassAndFail(t *testing.T) {
	snap, symtab := buildSingleTerminalSnapshot(t)

	pass := &TestCase{Name: "pass", Path: "pass.txt", Input: "hello", ExpectedTree: "s\n└─ Id \"hello\"\n"}
	fail := &TestCase{Name: "fail", Path: "fail.txt", Input: "hello", ExpectedTree: "s\n└─ Id \"nope\"\n"}

	results := Run(snap, symtab, []*TestCase{pass, fail})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %v", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("expected %q to pass, got %v", pass.Name, results[0])
	}
	if results[1].Passed {
		t.Fatalf("expected %q to fail", fail.Name)
	}
}
