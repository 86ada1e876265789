package symbol

import "testing"

func TestTableInternIsStable(t *testing.T) {
	tab := NewTable()

	s1, err := tab.InternNonTerminal("expr")
	if err != nil {
		t.Fatal(err)
	}
	s2, err := tab.InternNonTerminal("expr")
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Fatalf("interning the same nonterminal twice gave different symbols: %v, %v", s1, s2)
	}

	t1, err := tab.InternTerminal("id", "IDENTIFIER")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := tab.InternTerminal("id", "IDENTIFIER")
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 {
		t.Fatalf("interning the same terminal twice gave different symbols: %v, %v", t1, t2)
	}

	if s1 == Symbol(t1) {
		t.Fatalf("nonterminal and terminal symbols collided")
	}
}

func TestNamespacesAreDisjoint(t *testing.T) {
	tab := NewTable()

	nt, err := tab.InternNonTerminal("foo")
	if err != nil {
		t.Fatal(err)
	}
	term, err := tab.InternTerminal("foo", "")
	if err != nil {
		t.Fatal(err)
	}
	if nt == term {
		t.Fatalf("a terminal and a nonterminal with the same name must not be identity-equal")
	}
	if len(tab.Warnings()) != 1 {
		t.Fatalf("expected exactly one warning for the name collision, got %v", tab.Warnings())
	}
}

func TestEpsilonAndEOFAreSingletons(t *testing.T) {
	if !Epsilon.IsEpsilon() {
		t.Fatalf("Epsilon.IsEpsilon() = false")
	}
	if !EOF.IsEOF() {
		t.Fatalf("EOF.IsEOF() = false")
	}
	if !EOF.IsTerminal() {
		t.Fatalf("EOF must be treated as a terminal for FIRST/FOLLOW purposes")
	}

	tab := NewTable()
	name, ok := tab.ToText(Epsilon)
	if !ok || name != NameEpsilon {
		t.Fatalf("Epsilon should render as %q, got %q", NameEpsilon, name)
	}
	name, ok = tab.ToText(EOF)
	if !ok || name != NameEndOfLine {
		t.Fatalf("EOF should render as %q, got %q", NameEndOfLine, name)
	}
}

func TestTerminalsAndNonTerminalsAreSortedByNumber(t *testing.T) {
	tab := NewTable()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		if _, err := tab.InternNonTerminal(n); err != nil {
			t.Fatal(err)
		}
	}

	syms := tab.NonTerminals()
	for i := 1; i < len(syms); i++ {
		if syms[i-1].Num() >= syms[i].Num() {
			t.Fatalf("NonTerminals() is not sorted by symbol number: %v", syms)
		}
	}
}

func TestFindReturnsInternedSymbol(t *testing.T) {
	tab := NewTable()
	want, err := tab.InternTerminal("plus", "")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := tab.Find("plus")
	if !ok || got != want {
		t.Fatalf("Find(%q) = %v, %v; want %v, true", "plus", got, ok, want)
	}
	if _, ok := tab.Find("nope"); ok {
		t.Fatalf("Find should report false for an unregistered name")
	}
}
