// Package grammar implements the LALR(1) table-construction pipeline:
// the grammar model with FIRST/FOLLOW/NULLABLE (this file and
// nullable.go/first.go/follow.go), the LR(0) item automaton
// (lr0_item.go, lr0.go), LALR(1) lookahead assignment (lalr1.go), and
// parse-table assembly with conflict detection (parsing_table.go,
// conflict.go).
package grammar

import (
	"fmt"

	"github.com/nkym/lalrc/symbol"
)

// Grammar is an ordered list of productions plus a nominated start
// symbol. FIRST, FOLLOW, and NULLABLE are computed lazily and memoized;
// any mutation (AddProduction, Augment) invalidates the memo.
type Grammar struct {
	SymbolTable *symbol.Table

	prods     *productionSet
	start     symbol.Symbol
	augmented bool

	sets *symbolSets // memoized FIRST/FOLLOW/NULLABLE; nil until computed
}

func NewGrammar(symtab *symbol.Table) *Grammar {
	return &Grammar{
		SymbolTable: symtab,
		prods:       newProductionSet(),
	}
}

// AddProduction appends a production lhs → rhs and invalidates any
// memoized FIRST/FOLLOW/NULLABLE sets. rhs may be empty or [ε]; both
// spellings normalize to the same empty production.
func (g *Grammar) AddProduction(lhs symbol.Symbol, rhs []symbol.Symbol) (*Production, error) {
	if !lhs.IsNonTerminal() {
		return nil, fmt.Errorf("a production's LHS must be a nonterminal, got %v", lhs)
	}
	prod, err := newProduction(lhs, rhs)
	if err != nil {
		return nil, err
	}
	prod.Num = 0 // set for real by productionSet.append
	g.prods.append(prod, false)
	g.sets = nil
	return prod, nil
}

// SetStart records the grammar's nominated start symbol.
func (g *Grammar) SetStart(sym symbol.Symbol) error {
	if !sym.IsNonTerminal() {
		return fmt.Errorf("the start symbol must be a nonterminal, got %v", sym)
	}
	g.start = sym
	g.sets = nil
	return nil
}

func (g *Grammar) Start() symbol.Symbol {
	return g.start
}

func (g *Grammar) IsAugmented() bool {
	return g.augmented
}

func (g *Grammar) Productions() []*Production {
	return g.prods.all()
}

func (g *Grammar) ProductionByID(id productionID) (*Production, bool) {
	return g.prods.findByID(id)
}

func (g *Grammar) ProductionsFor(lhs symbol.Symbol) []*Production {
	return g.prods.findByLHS(lhs)
}

// Augment adds the fresh start production start' → start as production
// 0 and makes start' the grammar's start symbol. It is idempotent: a
// second call is a no-op, matching spec §4.2 and the round-trip
// property "calling augment() twice equals calling it once".
func (g *Grammar) Augment() error {
	if g.augmented {
		return nil
	}
	if g.start.IsNil() {
		return fmt.Errorf("cannot augment a grammar with no start symbol")
	}

	origStartName, ok := g.SymbolTable.ToText(g.start)
	if !ok {
		return fmt.Errorf("start symbol %v has no registered name", g.start)
	}
	newStart, err := g.SymbolTable.InternNonTerminal(origStartName + "'")
	if err != nil {
		return err
	}

	prod, err := newProduction(newStart, []symbol.Symbol{g.start})
	if err != nil {
		return err
	}
	g.prods.append(prod, true)

	g.start = newStart
	g.augmented = true
	g.sets = nil
	return nil
}

// Validate reports grammar-structure errors without mutating the
// grammar or throwing: a missing start symbol, an empty production
// list, and any right-hand-side nonterminal with no defining
// production of its own.
func (g *Grammar) Validate() []error {
	var errs []error

	if g.start.IsNil() {
		errs = append(errs, fmt.Errorf("no start symbol has been set"))
	}
	if g.prods.len() == 0 {
		errs = append(errs, fmt.Errorf("grammar has no productions"))
	}

	defined := map[symbol.Symbol]bool{}
	for _, p := range g.prods.all() {
		defined[p.LHS] = true
	}
	seen := map[symbol.Symbol]bool{}
	for _, p := range g.prods.all() {
		for _, s := range p.RHS {
			if !s.IsNonTerminal() || seen[s] {
				continue
			}
			seen[s] = true
			if !defined[s] {
				name, _ := g.SymbolTable.ToText(s)
				errs = append(errs, fmt.Errorf("undefined nonterminal: %v", name))
			}
		}
	}

	return errs
}
