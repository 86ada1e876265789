package grammar

import "github.com/nkym/lalrc/symbol"

// ProductionSnapshot is the code emitter's view of one production: its
// stable index, its symbol ids, and a rendered source-string form for
// diagnostics and generated comments.
type ProductionSnapshot struct {
	Num    int
	LHS    symbol.Symbol
	RHS    []symbol.Symbol
	Source string
}

// Snapshot is the output contract handed to the code emitter and
// report renderer, per spec §6: the production list, both symbol
// tables in a defined order, the state count, and the ACTION/GOTO
// tables in the fixed encoding. Terminals[0] and NonTerminals[0] are
// always `$` and the augmented start symbol, matching the reserved
// index-0 slots the contract requires.
type Snapshot struct {
	Productions []ProductionSnapshot

	Terminals    []symbol.Symbol
	NonTerminals []symbol.Symbol

	StateCount int
	Action     [][]Action // [state][terminal column, $ is column 0]
	GoTo       [][]int    // [state][nonterminal column]; -1 means no edge

	Conflicts ConflictList
}

// Snapshot renders g's productions and table into the emitter's output
// contract. g must be augmented and table must have been built from
// g's own automaton.
func (g *Grammar) Snapshot(table *ParsingTable) *Snapshot {
	if !g.augmented {
		panic("grammar: snapshot requires an augmented grammar")
	}

	terms := g.SymbolTable.Terminals()
	termSyms := make([]symbol.Symbol, 0, len(terms)+1)
	termSyms = append(termSyms, symbol.EOF)
	termSyms = append(termSyms, terms...)

	nonterms := g.SymbolTable.NonTerminals()
	ntSyms := make([]symbol.Symbol, 0, len(nonterms))
	ntSyms = append(ntSyms, g.start)
	for _, s := range nonterms {
		if s == g.start {
			continue
		}
		ntSyms = append(ntSyms, s)
	}

	prods := g.prods.all()
	prodSnaps := make([]ProductionSnapshot, 0, len(prods))
	name := func(s symbol.Symbol) string {
		n, _ := g.SymbolTable.ToText(s)
		return n
	}
	for _, p := range prods {
		prodSnaps = append(prodSnaps, ProductionSnapshot{
			Num:    p.Num.Int(),
			LHS:    p.LHS,
			RHS:    append([]symbol.Symbol{}, p.RHS...),
			Source: p.String(name),
		})
	}

	action := make([][]Action, table.StateCount)
	goTo := make([][]int, table.StateCount)
	for s := 0; s < table.StateCount; s++ {
		row := make([]Action, len(termSyms))
		for j, sym := range termSyms {
			row[j] = table.Action(StateNum(s), sym)
		}
		action[s] = row

		grow := make([]int, len(ntSyms))
		for j, sym := range ntSyms {
			if target, ok := table.GoTo(StateNum(s), sym); ok {
				grow[j] = target.Int()
			} else {
				grow[j] = -1
			}
		}
		goTo[s] = grow
	}

	return &Snapshot{
		Productions:  prodSnaps,
		Terminals:    termSyms,
		NonTerminals: ntSyms,
		StateCount:   table.StateCount,
		Action:       action,
		GoTo:         goTo,
		Conflicts:    table.Conflicts,
	}
}
