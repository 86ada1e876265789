package grammar

import "github.com/nkym/lalrc/symbol"

// computeFirst is a fixed-point computation of FIRST(A) for every
// nonterminal A, seeded with FIRST(t) = {t} for terminals. The walk
// over a production's RHS stops at the first non-nullable symbol,
// mirroring spec §4.2 exactly.
func computeFirst(prods *productionSet, nullable map[symbol.Symbol]bool) map[symbol.Symbol]map[symbol.Symbol]struct{} {
	first := map[symbol.Symbol]map[symbol.Symbol]struct{}{}
	ensure := func(s symbol.Symbol) map[symbol.Symbol]struct{} {
		if m, ok := first[s]; ok {
			return m
		}
		m := map[symbol.Symbol]struct{}{}
		first[s] = m
		return m
	}

	for _, p := range prods.all() {
		ensure(p.LHS)
		for _, s := range p.RHS {
			if s.IsTerminal() {
				m := ensure(s)
				m[s] = struct{}{}
			}
		}
	}

	for {
		changed := false
		for _, p := range prods.all() {
			acc := ensure(p.LHS)
			if firstOfSeq(p.RHS, 0, first, nullable, acc) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return first
}

// firstOfSeq merges FIRST(rhs[from:]) into acc and reports whether acc
// changed. When the whole suffix is nullable, ε is added to acc.
func firstOfSeq(rhs []symbol.Symbol, from int, first map[symbol.Symbol]map[symbol.Symbol]struct{}, nullable map[symbol.Symbol]bool, acc map[symbol.Symbol]struct{}) bool {
	changed := false
	add := func(s symbol.Symbol) {
		if _, ok := acc[s]; !ok {
			acc[s] = struct{}{}
			changed = true
		}
	}

	if from >= len(rhs) {
		add(symbol.Epsilon)
		return changed
	}

	for _, s := range rhs[from:] {
		if s.IsTerminal() {
			add(s)
			return changed
		}
		for sym := range first[s] {
			if sym != symbol.Epsilon {
				add(sym)
			}
		}
		if !nullable[s] {
			return changed
		}
	}
	add(symbol.Epsilon)
	return changed
}

// firstOfSymbols computes FIRST(alpha) for an arbitrary symbol
// sequence, without mutating any memoized table.
func firstOfSymbols(alpha []symbol.Symbol, first map[symbol.Symbol]map[symbol.Symbol]struct{}, nullable map[symbol.Symbol]bool) map[symbol.Symbol]struct{} {
	acc := map[symbol.Symbol]struct{}{}
	firstOfSeq(alpha, 0, first, nullable, acc)
	return acc
}

// First returns FIRST(sym): the set of terminals (plus possibly ε)
// that can begin a string derived from sym.
func (g *Grammar) First(sym symbol.Symbol) map[symbol.Symbol]struct{} {
	if sym.IsTerminal() {
		return map[symbol.Symbol]struct{}{sym: {}}
	}
	if sym.IsEpsilon() {
		return map[symbol.Symbol]struct{}{symbol.Epsilon: {}}
	}
	out := map[symbol.Symbol]struct{}{}
	for s := range g.ensureSets().first[sym] {
		out[s] = struct{}{}
	}
	return out
}

// FirstOfSequence returns FIRST(alpha) for an arbitrary sequence of
// symbols, e.g. the beta following a dot in an LR item.
func (g *Grammar) FirstOfSequence(alpha []symbol.Symbol) map[symbol.Symbol]struct{} {
	sets := g.ensureSets()
	return firstOfSymbols(alpha, sets.first, sets.nullable)
}
