package reader

import "testing"

func TestParseStripsCommentsAndParsesRules(t *testing.T) {
	src := `
grammar Expr; // top-level declaration
e : e Plus t   // line comment
  | t
  ;
t : Num ;
`
	f, err := Parse(src, "expr.g4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.GrammarName != "Expr" {
		t.Fatalf("expected grammar name Expr, got %q", f.GrammarName)
	}
	if len(f.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %v", len(f.Rules))
	}
	if len(f.Rules[0].Alts) != 2 {
		t.Fatalf("expected 2 alternatives for e, got %v", len(f.Rules[0].Alts))
	}
}

func TestParseRejectsEBNFStar(t *testing.T) {
	src := `x : a b* c ;`
	_, err := Parse(src, "x.g4")
	if err == nil {
		t.Fatalf("expected an error for the unsupported EBNF operator")
	}
}

func TestParseHandlesEmptyAlternative(t *testing.T) {
	src := `a : X | ;`
	f, err := Parse(src, "a.g4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Rules[0].Alts) != 2 {
		t.Fatalf("expected 2 alternatives, got %v", len(f.Rules[0].Alts))
	}
	if len(f.Rules[0].Alts[1].Elements) != 0 {
		t.Fatalf("second alternative should be empty")
	}
}

func TestBuildInternsByNamingConvention(t *testing.T) {
	src := `
e : e Plus t
  | t
  ;
t : Num ;
`
	f, err := Parse(src, "e.g4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	symtab, g, err := Build(f, "e.g4")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	plus, ok := symtab.Find("Plus")
	if !ok || !plus.IsTerminal() {
		t.Fatalf("Plus should be interned as a terminal")
	}
	e, ok := symtab.Find("e")
	if !ok || !e.IsNonTerminal() {
		t.Fatalf("e should be interned as a nonterminal")
	}
	if g.Start() != e {
		t.Fatalf("the first rule should become the start symbol")
	}
	if errs := g.Validate(); len(errs) != 0 {
		t.Fatalf("expected a valid grammar, got %v", errs)
	}
}

func TestBuildInternsQuotedLiteralsAsTerminals(t *testing.T) {
	src := `e : e '+' t | t ; t : Num ;`
	f, err := Parse(src, "e.g4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	symtab, _, err := Build(f, "e.g4")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	plus, ok := symtab.Find("+")
	if !ok || !plus.IsTerminal() {
		t.Fatalf("'+' should be interned as a terminal named \"+\"")
	}
}
