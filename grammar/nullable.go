package grammar

import "github.com/nkym/lalrc/symbol"

// symbolSets bundles the three memoized fixed-point computations a
// Grammar needs: NULLABLE, FIRST, and FOLLOW. They are computed
// together because FOLLOW depends on FIRST and FIRST's short-circuiting
// walk depends on NULLABLE.
type symbolSets struct {
	nullable map[symbol.Symbol]bool
	first    map[symbol.Symbol]map[symbol.Symbol]struct{}
	follow   map[symbol.Symbol]map[symbol.Symbol]struct{}
}

// ensureSets computes and memoizes NULLABLE/FIRST/FOLLOW on first use
// after construction or after the last mutation. It panics if the
// grammar has not been augmented, since FOLLOW(start) = {$} is only
// meaningful once augmentation has happened.
func (g *Grammar) ensureSets() *symbolSets {
	if g.sets != nil {
		return g.sets
	}
	if !g.augmented {
		panic("grammar: FIRST/FOLLOW/NULLABLE require an augmented grammar")
	}

	nullable := computeNullable(g.prods)
	first := computeFirst(g.prods, nullable)
	follow := computeFollow(g.prods, first, nullable, g.start)

	g.sets = &symbolSets{
		nullable: nullable,
		first:    first,
		follow:   follow,
	}
	return g.sets
}

// Nullable reports whether sym can derive the empty string.
func (g *Grammar) Nullable(sym symbol.Symbol) bool {
	if sym.IsEpsilon() {
		return true
	}
	return g.ensureSets().nullable[sym]
}

func computeNullable(prods *productionSet) map[symbol.Symbol]bool {
	nullable := map[symbol.Symbol]bool{}
	for _, p := range prods.all() {
		if _, ok := nullable[p.LHS]; !ok {
			nullable[p.LHS] = false
		}
		for _, s := range p.RHS {
			if _, ok := nullable[s]; !ok && s.IsNonTerminal() {
				nullable[s] = false
			}
		}
	}

	for {
		changed := false
		for _, p := range prods.all() {
			if nullable[p.LHS] {
				continue
			}
			if p.IsEmpty() {
				nullable[p.LHS] = true
				changed = true
				continue
			}
			allNullable := true
			for _, s := range p.RHS {
				if s.IsTerminal() {
					allNullable = false
					break
				}
				if !nullable[s] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.LHS] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return nullable
}
