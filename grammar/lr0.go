package grammar

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/nkym/lalrc/symbol"
)

// State is a canonical LR(0) automaton state: a closed item set plus
// the GOTO edges leading out of it, keyed by grammar symbol.
type State struct {
	Num    StateNum
	kernel *kernel

	Items []*Item // closure(kernel), including the kernel items themselves

	next map[symbol.Symbol]StateNum // GOTO edges out of this state
}

// Closure returns the state's item set, kernel and closure items
// together, sorted by item id.
func (s *State) Closure() []*Item {
	return s.Items
}

// GoTo returns the state reached by shifting sym out of s, if any.
func (s *State) GoTo(sym symbol.Symbol) (StateNum, bool) {
	n, ok := s.next[sym]
	return n, ok
}

// Edges returns the state's outgoing GOTO edges sorted by symbol, for
// deterministic display and table construction.
func (s *State) Edges() []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, len(s.next))
	for sym := range s.next {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Automaton is the canonical collection of LR(0) states reachable from
// the initial state, closure(kernel({[start' →·start]})).
type Automaton struct {
	states     []*State
	kernelToID map[itemSetID]StateNum
}

func (a *Automaton) States() []*State {
	return a.states
}

func (a *Automaton) State(n StateNum) *State {
	return a.states[n.Int()]
}

func (a *Automaton) Len() int {
	return len(a.states)
}

// BuildLR0Automaton constructs the canonical LR(0) automaton for an
// augmented grammar by repeatedly closing kernels and computing GOTO
// on every symbol observed after a dot, per spec §4.4. States are
// discovered in a deterministic, symbol-sorted work-queue order so
// state numbering is reproducible across runs.
func (g *Grammar) BuildLR0Automaton() (*Automaton, error) {
	if !g.augmented {
		panic("grammar: LR(0) automaton construction requires an augmented grammar")
	}

	startProds := g.prods.findByLHS(g.start)
	if len(startProds) != 1 {
		panic("grammar: augmented grammar must have exactly one production for its start symbol")
	}
	startItem, err := newItem(startProds[0], 0)
	if err != nil {
		return nil, err
	}

	a := &Automaton{kernelToID: map[itemSetID]StateNum{}}

	initKernel := newKernel([]*Item{startItem})
	initState := &State{
		Num:    InitialState,
		kernel: initKernel,
		Items:  g.closure(initKernel.items),
		next:   map[symbol.Symbol]StateNum{},
	}
	a.states = append(a.states, initState)
	a.kernelToID[initKernel.id] = InitialState

	queue := []*State{initState}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		byNext := map[symbol.Symbol][]*Item{}
		for _, it := range s.Items {
			if it.IsComplete {
				continue
			}
			byNext[it.NextSymbol] = append(byNext[it.NextSymbol], it)
		}

		syms := make([]symbol.Symbol, 0, len(byNext))
		for sym := range byNext {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

		for _, sym := range syms {
			var advanced []*Item
			for _, it := range byNext[sym] {
				advanced = append(advanced, it.Advance(g.prods))
			}
			k := newKernel(advanced)

			if existing, ok := a.kernelToID[k.id]; ok {
				s.next[sym] = existing
				continue
			}

			ns := &State{
				Num:    StateNum(len(a.states)),
				kernel: k,
				Items:  g.closure(k.items),
				next:   map[symbol.Symbol]StateNum{},
			}
			a.states = append(a.states, ns)
			a.kernelToID[k.id] = ns.Num
			s.next[sym] = ns.Num
			queue = append(queue, ns)
		}
	}

	return a, nil
}

// closure expands a kernel item set with every item implied by a
// nonterminal immediately after a dot, until no more items can be
// added. Grounded on the standard closure(I) construction: for
// [A → α·Bβ] in the set, add [B → ·γ] for every production B → γ.
func (g *Grammar) closure(seed []*Item) []*Item {
	set := treeset.NewWith(itemComparator)
	for _, it := range seed {
		set.Add(it)
	}

	pending := make([]*Item, len(seed))
	copy(pending, seed)

	for len(pending) > 0 {
		it := pending[0]
		pending = pending[1:]

		if it.IsComplete || !it.NextSymbol.IsNonTerminal() {
			continue
		}
		for _, p := range g.prods.findByLHS(it.NextSymbol) {
			newIt, err := newItem(p, 0)
			if err != nil {
				panic(err)
			}
			if !set.Contains(newIt) {
				set.Add(newIt)
				pending = append(pending, newIt)
			}
		}
	}

	out := make([]*Item, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(*Item))
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < len(out[i].id); k++ {
			if out[i].id[k] != out[j].id[k] {
				return out[i].id[k] < out[j].id[k]
			}
		}
		return false
	})
	return out
}

// itemComparator orders items by their content-hash id, giving the
// treeset used by closure a total, deterministic order independent of
// map iteration.
func itemComparator(a, b interface{}) int {
	ia, ib := a.(*Item), b.(*Item)
	for k := 0; k < len(ia.id); k++ {
		if ia.id[k] != ib.id[k] {
			if ia.id[k] < ib.id[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}
