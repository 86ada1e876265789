package grammar

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/nkym/lalrc/symbol"
)

// itemID identifies an LR(0) item by the production it dots and the
// dot position, so items can be deduplicated and used as map keys
// without repeating the (production, dot) comparison everywhere.
type itemID [32]byte

// Item is a production with a dot position: [A → α·β].
type Item struct {
	id   itemID
	prod productionID

	Dot          int
	NextSymbol   symbol.Symbol // symbol.Nil when IsComplete
	IsComplete   bool
	IsAugmented  bool // an item of the augmented production start' → start, at any dot
}

func newItem(p *Production, dot int) (*Item, error) {
	if dot < 0 || dot > len(p.RHS) {
		return nil, fmt.Errorf("dot must be within [0, %v], got %v", len(p.RHS), dot)
	}

	var id itemID
	{
		b := make([]byte, 0, len(p.id)+8)
		b = append(b, p.id[:]...)
		dotBytes := make([]byte, 8)
		binary.LittleEndian.PutUint64(dotBytes, uint64(dot))
		b = append(b, dotBytes...)
		id = sha256.Sum256(b)
	}

	next := symbol.Nil
	complete := dot == len(p.RHS)
	if !complete {
		next = p.RHS[dot]
	}

	return &Item{
		id:          id,
		prod:        p.id,
		Dot:         dot,
		NextSymbol:  next,
		IsComplete:  complete,
		IsAugmented: p.Num == NumAugmented,
	}, nil
}

// Advance returns the item with the dot shifted one symbol to the
// right. It panics if the item is already complete: this is a
// precondition violation per spec §7(b), not a user-facing error.
func (it *Item) Advance(prods *productionSet) *Item {
	if it.IsComplete {
		panic("grammar: cannot advance a complete item")
	}
	p, ok := prods.findByID(it.prod)
	if !ok {
		panic("grammar: item references an unknown production")
	}
	next, err := newItem(p, it.Dot+1)
	if err != nil {
		panic(err)
	}
	return next
}

// itemSetID identifies a set of items by the hash of its sorted
// member IDs, so two structurally equal item sets collapse to a single
// automaton state without an O(n) set-equality scan.
type itemSetID [32]byte

func hashItems(items []*Item) itemSetID {
	sorted := make([]*Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		for k := 0; k < len(sorted[i].id) && k < len(sorted[j].id); k++ {
			if sorted[i].id[k] != sorted[j].id[k] {
				return sorted[i].id[k] < sorted[j].id[k]
			}
		}
		return false
	})
	b := make([]byte, 0, len(sorted)*32)
	for _, it := range sorted {
		b = append(b, it.id[:]...)
	}
	return itemSetID(sha256.Sum256(b))
}

// kernel is the set of items that identifies an automaton state: the
// seed items a state's closure was computed from, before closure adds
// any dot-at-zero items. Two states with equal kernels are the same
// state.
type kernel struct {
	id    itemSetID
	items []*Item
}

func newKernel(items []*Item) *kernel {
	dedup := map[itemID]*Item{}
	for _, it := range items {
		dedup[it.id] = it
	}
	sorted := make([]*Item, 0, len(dedup))
	for _, it := range dedup {
		sorted = append(sorted, it)
	}
	sort.Slice(sorted, func(i, j int) bool {
		for k := 0; k < len(sorted[i].id); k++ {
			if sorted[i].id[k] != sorted[j].id[k] {
				return sorted[i].id[k] < sorted[j].id[k]
			}
		}
		return false
	})
	return &kernel{
		id:    hashItems(sorted),
		items: sorted,
	}
}

// ItemString renders it as "[A -> α · β]" using g's symbol table,
// for report rendering.
func (g *Grammar) ItemString(it *Item) string {
	p, ok := g.prods.findByID(it.prod)
	if !ok {
		panic("grammar: item references an unknown production")
	}
	nm := func(s symbol.Symbol) string {
		n, _ := g.SymbolTable.ToText(s)
		return n
	}

	var b []string
	b = append(b, nm(p.LHS), "->")
	for i, s := range p.RHS {
		if i == it.Dot {
			b = append(b, "·")
		}
		b = append(b, nm(s))
	}
	if it.Dot == len(p.RHS) {
		b = append(b, "·")
	}
	if p.IsEmpty() {
		b = append(b, symbol.NameEpsilon)
	}
	return "[" + strings.Join(b, " ") + "]"
}

// StateNum is the integer id assigned to a canonical LR(0) state. The
// initial state is always 0.
type StateNum int

const InitialState = StateNum(0)

func (n StateNum) Int() int {
	return int(n)
}
