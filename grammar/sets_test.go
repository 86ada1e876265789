package grammar

import (
	"testing"

	"github.com/nkym/lalrc/symbol"
)

func TestNullableOfEmptyProduction(t *testing.T) {
	g := buildGrammar(t, []string{
		"s -> a",
		"a -> ε",
	}, "s")

	a, _ := g.SymbolTable.Find("a")
	if !g.Nullable(a) {
		t.Fatalf("a should be nullable")
	}
}

func TestFirstOfDirectLeftRecursion(t *testing.T) {
	g := buildGrammar(t, []string{
		"e -> e Plus t",
		"e -> t",
		"t -> Num",
	}, "e")

	e, _ := g.SymbolTable.Find("e")
	num, _ := g.SymbolTable.Find("Num")

	first := g.First(e)
	if _, ok := first[num]; !ok {
		t.Fatalf("FIRST(e) should contain Num, got %v", first)
	}
	if _, ok := first[symbol.Epsilon]; ok {
		t.Fatalf("FIRST(e) should not contain ε: e cannot derive the empty string")
	}
}

func TestFollowOfStartContainsEOF(t *testing.T) {
	g := buildGrammar(t, []string{
		"s -> Id",
	}, "s")

	// Start() now names the augmented symbol; look up FOLLOW of the
	// original start via the grammar's pre-augmentation name.
	origStart, _ := g.SymbolTable.Find("s")
	follow := g.Follow(origStart)
	if _, ok := follow[symbol.EOF]; !ok {
		t.Fatalf("FOLLOW(s) should contain $ after augmentation, got %v", follow)
	}
}

func TestNullableImpliesEpsilonInFirst(t *testing.T) {
	g := buildGrammar(t, []string{
		"s -> a B",
		"a -> ε",
	}, "s")

	a, _ := g.SymbolTable.Find("a")
	first := g.First(a)
	if _, ok := first[symbol.Epsilon]; !ok {
		t.Fatalf("a is nullable, so ε must be in FIRST(a)")
	}
}
