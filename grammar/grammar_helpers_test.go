package grammar

import (
	"strings"
	"testing"
	"unicode"

	"github.com/nkym/lalrc/symbol"
)

// internByConvention interns name as a terminal when its first rune is
// upper-case, and as a nonterminal otherwise, mirroring the input
// contract's naming-convention rule (spec §6).
func internByConvention(t *testing.T, symtab *symbol.Table, name string) symbol.Symbol {
	t.Helper()
	r := []rune(name)[0]
	var sym symbol.Symbol
	var err error
	if unicode.IsUpper(r) {
		sym, err = symtab.InternTerminal(name, "")
	} else {
		sym, err = symtab.InternNonTerminal(name)
	}
	if err != nil {
		t.Fatalf("intern %q: %v", name, err)
	}
	return sym
}

// buildGrammar builds a Grammar from productions written as "lhs -> a b c"
// (or "lhs -> ε" for an empty production), interning symbols by naming
// convention, and augments it against start.
func buildGrammar(t *testing.T, rules []string, start string) *Grammar {
	t.Helper()
	symtab := symbol.NewTable()
	g := NewGrammar(symtab)

	for _, rule := range rules {
		parts := strings.SplitN(rule, "->", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed rule: %q", rule)
		}
		lhs := internByConvention(t, symtab, strings.TrimSpace(parts[0]))

		var rhs []symbol.Symbol
		fields := strings.Fields(parts[1])
		if !(len(fields) == 1 && fields[0] == "ε") {
			for _, f := range fields {
				rhs = append(rhs, internByConvention(t, symtab, f))
			}
		}
		if _, err := g.AddProduction(lhs, rhs); err != nil {
			t.Fatalf("AddProduction(%q): %v", rule, err)
		}
	}

	startSym, ok := symtab.Find(start)
	if !ok {
		t.Fatalf("start symbol %q was never interned", start)
	}
	if err := g.SetStart(startSym); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if errs := g.Validate(); len(errs) > 0 {
		t.Fatalf("Validate: %v", errs)
	}
	if err := g.Augment(); err != nil {
		t.Fatalf("Augment: %v", err)
	}
	return g
}
