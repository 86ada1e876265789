package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

func buildTestSnapshot(t *testing.T) (*grammar.Snapshot, *symbol.Table) {
	t.Helper()
	symtab := symbol.NewTable()
	g := grammar.NewGrammar(symtab)

	s, _ := symtab.InternNonTerminal("s")
	id, _ := symtab.InternTerminal("Id", "")
	plus, _ := symtab.InternTerminal("+", "")
	if _, err := g.AddProduction(s, []symbol.Symbol{id, plus, id}); err != nil {
		t.Fatalf("AddProduction: %v", err)
	}
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

func TestGenerateProducesFormattedGoSource(t *testing.T) {
	snap, symtab := buildTestSnapshot(t)
	res, err := Generate(snap, symtab, "expr")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for label, src := range map[string][]byte{
		"lexer":  res.Lexer,
		"parser": res.Parser,
		"tree":   res.Tree,
		"test":   res.Test,
	} {
		if !bytes.Contains(src, []byte("package expr")) {
			t.Fatalf("%v: expected package clause, got:\n%v", label, string(src))
		}
	}

	if !strings.Contains(string(res.Lexer), `text: "+"`) {
		t.Fatalf("expected the literal terminal \"+\" to appear in the lexer, got:\n%v", string(res.Lexer))
	}
	if !strings.Contains(string(res.Lexer), "Classifier") {
		t.Fatalf("expected a Classifier hook for the named terminal Id")
	}
}

func TestGenerateDefaultsPackageName(t *testing.T) {
	snap, symtab := buildTestSnapshot(t)
	res, err := Generate(snap, symtab, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Contains(res.Parser, []byte("package parser")) {
		t.Fatalf("expected the default package name \"parser\"")
	}
}

func TestIsClassifiedTerminal(t *testing.T) {
	cases := map[string]bool{
		"Id": true,
		"Num": true,
		"+":  false,
		"if": false,
		"(":  false,
	}
	for name, want := range cases {
		if got := isClassifiedTerminal(name); got != want {
			t.Errorf("isClassifiedTerminal(%q) = %v, want %v", name, got, want)
		}
	}
}
