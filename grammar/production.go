package grammar

import (
	"crypto/sha256"
	"fmt"

	"github.com/nkym/lalrc/symbol"
)

// productionID identifies a production by the content of its LHS and
// RHS, so two productions built from equal symbol sequences collapse
// to a single instance even if a caller (or a buggy reader) submits
// the same rule twice.
type productionID [32]byte

func genProductionID(lhs symbol.Symbol, rhs []symbol.Symbol) productionID {
	b := make([]byte, 0, 2+2*len(rhs))
	b = append(b, byte(lhs>>8), byte(lhs))
	for _, s := range rhs {
		b = append(b, byte(s>>8), byte(s))
	}
	return productionID(sha256.Sum256(b))
}

// Num is a production's stable insertion-order index. The augmented
// production is always index 0.
type Num int

const NumAugmented = Num(0)

func (n Num) Int() int {
	return int(n)
}

// Production is a single grammar rule lhs → rhs. An empty rhs and a
// rhs of exactly [ε] are equivalent; NewProduction normalizes the
// latter into the former.
type Production struct {
	id  productionID
	Num Num
	LHS symbol.Symbol
	RHS []symbol.Symbol
}

func newProduction(lhs symbol.Symbol, rhs []symbol.Symbol) (*Production, error) {
	if lhs.IsNil() {
		return nil, fmt.Errorf("a production's LHS must not be nil")
	}
	norm := rhs
	if len(norm) == 1 && norm[0] == symbol.Epsilon {
		norm = nil
	}
	for _, s := range norm {
		if s.IsNil() {
			return nil, fmt.Errorf("a production's RHS must not contain a nil symbol; LHS: %v", lhs)
		}
	}
	return &Production{
		id:  genProductionID(lhs, norm),
		LHS: lhs,
		RHS: norm,
	}, nil
}

func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

// String renders the production the way the grammar reader's source
// text would spell it, using name for symbol-to-text lookup.
func (p *Production) String(name func(symbol.Symbol) string) string {
	if p.IsEmpty() {
		return fmt.Sprintf("%v -> %v", name(p.LHS), symbol.NameEpsilon)
	}
	s := name(p.LHS) + " ->"
	for _, sym := range p.RHS {
		s += " " + name(sym)
	}
	return s
}

// productionSet owns every production of a grammar, indexed for
// lookup by identity and by left-hand side.
type productionSet struct {
	byID    map[productionID]*Production
	byLHS   map[symbol.Symbol][]*Production
	ordered []*Production
	nextNum Num
}

func newProductionSet() *productionSet {
	return &productionSet{
		byID:    map[productionID]*Production{},
		byLHS:   map[symbol.Symbol][]*Production{},
		nextNum: NumAugmented + 1,
	}
}

// append adds prod if it is not already present, assigning it the next
// production number (or NumAugmented when isAugmented is set, in which
// case prod is placed first in the ordered list). It reports whether
// prod was newly added.
func (ps *productionSet) append(prod *Production, isAugmented bool) bool {
	if _, ok := ps.byID[prod.id]; ok {
		return false
	}
	if isAugmented {
		prod.Num = NumAugmented
	} else {
		prod.Num = ps.nextNum
		ps.nextNum++
	}
	ps.byID[prod.id] = prod
	ps.byLHS[prod.LHS] = append(ps.byLHS[prod.LHS], prod)
	if isAugmented {
		ps.ordered = append([]*Production{prod}, ps.ordered...)
	} else {
		ps.ordered = append(ps.ordered, prod)
	}
	return true
}

func (ps *productionSet) findByID(id productionID) (*Production, bool) {
	p, ok := ps.byID[id]
	return p, ok
}

func (ps *productionSet) findByLHS(lhs symbol.Symbol) []*Production {
	return ps.byLHS[lhs]
}

// all returns every production ordered by production number, with the
// augmented production (number 0) first when present.
func (ps *productionSet) all() []*Production {
	out := make([]*Production, len(ps.ordered))
	copy(out, ps.ordered)
	// append puts the augmented production at the front and numbers
	// every other production in insertion order, so ordered already
	// sorts by Num.
	return out
}

func (ps *productionSet) len() int {
	return len(ps.ordered)
}
