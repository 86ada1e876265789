package grammar

import "github.com/nkym/lalrc/symbol"

// computeFollow is a fixed-point computation of FOLLOW(A) for every
// nonterminal A, seeded with FOLLOW(start) = {$}, per spec §4.2.
func computeFollow(prods *productionSet, first map[symbol.Symbol]map[symbol.Symbol]struct{}, nullable map[symbol.Symbol]bool, start symbol.Symbol) map[symbol.Symbol]map[symbol.Symbol]struct{} {
	follow := map[symbol.Symbol]map[symbol.Symbol]struct{}{}
	ensure := func(s symbol.Symbol) map[symbol.Symbol]struct{} {
		if m, ok := follow[s]; ok {
			return m
		}
		m := map[symbol.Symbol]struct{}{}
		follow[s] = m
		return m
	}

	nonterms := map[symbol.Symbol]struct{}{}
	for _, p := range prods.all() {
		nonterms[p.LHS] = struct{}{}
		ensure(p.LHS)
	}
	ensure(start)[symbol.EOF] = struct{}{}

	for {
		changed := false
		for _, p := range prods.all() {
			for i, s := range p.RHS {
				if !s.IsNonTerminal() {
					continue
				}
				acc := ensure(s)
				beta := p.RHS[i+1:]
				fst := firstOfSymbols(beta, first, nullable)
				for sym := range fst {
					if sym == symbol.Epsilon {
						continue
					}
					if _, ok := acc[sym]; !ok {
						acc[sym] = struct{}{}
						changed = true
					}
				}
				if _, ok := fst[symbol.Epsilon]; ok || len(beta) == 0 {
					for sym := range ensure(p.LHS) {
						if _, ok := acc[sym]; !ok {
							acc[sym] = struct{}{}
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return follow
}

// Follow returns FOLLOW(sym): the set of terminals (plus $ when sym
// can end a sentential form) that can immediately follow sym.
func (g *Grammar) Follow(sym symbol.Symbol) map[symbol.Symbol]struct{} {
	out := map[symbol.Symbol]struct{}{}
	for s := range g.ensureSets().follow[sym] {
		out[s] = struct{}{}
	}
	return out
}
