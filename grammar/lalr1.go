package grammar

import "github.com/nkym/lalrc/symbol"

// lookaheadAssigner computes the lookahead set for a single item within
// a state. It is a seam: the shipped assigner is the FOLLOW-based
// approximation of spec §4.5, but a DeRemer-Pennello propagation
// assigner could be substituted here without touching the automaton or
// the table assembler.
type lookaheadAssigner interface {
	assign(g *Grammar, it *Item) map[symbol.Symbol]struct{}
}

// followAssigner implements the weak, non-propagating lookahead rule:
// an item's lookahead is derived purely from its own production and
// dot position, never from how the containing state was reached.
type followAssigner struct{}

func (followAssigner) assign(g *Grammar, it *Item) map[symbol.Symbol]struct{} {
	if it.IsComplete {
		if it.IsAugmented {
			return map[symbol.Symbol]struct{}{symbol.EOF: {}}
		}
		p, ok := g.prods.findByID(it.prod)
		if !ok {
			panic("grammar: item references an unknown production")
		}
		return g.Follow(p.LHS)
	}

	x := it.NextSymbol
	if x.IsTerminal() {
		return map[symbol.Symbol]struct{}{x: {}}
	}
	out := g.First(x)
	delete(out, symbol.Epsilon)
	return out
}

var defaultAssigner lookaheadAssigner = followAssigner{}

// ItemLookahead pairs an LR(0) item with the lookahead set assigned to
// it within one state.
type ItemLookahead struct {
	Item       *Item
	Lookaheads map[symbol.Symbol]struct{}
}

// AssignLookaheads computes the lookahead set of every item in s,
// using the grammar's shipped lookahead assigner (spec §4.5).
func (g *Grammar) AssignLookaheads(s *State) []ItemLookahead {
	out := make([]ItemLookahead, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, ItemLookahead{
			Item:       it,
			Lookaheads: defaultAssigner.assign(g, it),
		})
	}
	return out
}
