package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

// writeBNF renders g as traditional BNF (one line per LHS, alternatives
// joined by " | ") and writes it to outPath, grounded on the C++
// original's G4Utils::convert_to_bnf.
func writeBNF(g *grammar.Grammar, sourcePath, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# BNF grammar converted from %v\n\n", sourcePath)
	fmt.Fprint(f, renderBNF(g))
	return nil
}

func renderBNF(g *grammar.Grammar) string {
	name := func(s symbol.Symbol) string {
		n, _ := g.SymbolTable.ToText(s)
		return n
	}

	seen := map[symbol.Symbol]bool{}
	var b strings.Builder
	for _, p := range g.Productions() {
		if p.LHS == g.Start() && g.IsAugmented() {
			continue // the augmented start production is an implementation detail
		}
		if seen[p.LHS] {
			continue
		}
		seen[p.LHS] = true

		var alts []string
		for _, alt := range g.ProductionsFor(p.LHS) {
			alts = append(alts, renderRHS(alt, name))
		}
		fmt.Fprintf(&b, "%v ::= %v\n", name(p.LHS), strings.Join(alts, " | "))
	}
	return b.String()
}

func renderRHS(p *grammar.Production, name func(symbol.Symbol) string) string {
	if p.IsEmpty() {
		return symbol.NameEpsilon
	}
	names := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		names[i] = name(s)
	}
	return strings.Join(names, " ")
}
