package grammar

import (
	"strconv"

	"github.com/nkym/lalrc/symbol"
)

// Action is a single ACTION table cell, encoded per spec §6: shift as
// a positive state id, reduce as -(productionNum+1), accept as 0, and
// error (what an unset cell reads as) as -1.
type Action int

const (
	ActionAccept = Action(0)
	ActionError  = Action(-1)
)

func ShiftAction(s StateNum) Action {
	return Action(s.Int())
}

func ReduceAction(n Num) Action {
	return Action(-(n.Int() + 1))
}

func (a Action) IsAccept() bool {
	return a == ActionAccept
}

func (a Action) IsError() bool {
	return a == ActionError
}

func (a Action) IsShift() bool {
	return a > 0
}

func (a Action) IsReduce() bool {
	return a < ActionError
}

func (a Action) ShiftTarget() StateNum {
	return StateNum(int(a))
}

func (a Action) ReduceProduction() Num {
	return Num(-int(a) - 1)
}

// String renders an action as spec §4.7 requires: "s<state>",
// "r<production_index>", "acc", or "err".
func (a Action) String() string {
	switch {
	case a.IsAccept():
		return "acc"
	case a.IsError():
		return "err"
	case a.IsShift():
		return "s" + strconv.Itoa(int(a))
	default:
		return "r" + strconv.Itoa(a.ReduceProduction().Int())
	}
}

// ConflictKind distinguishes a shift/reduce collision from a
// reduce/reduce one.
type ConflictKind string

const (
	SRConflict ConflictKind = "SR-conflict"
	RRConflict ConflictKind = "RR-conflict"
)

// Conflict is one table-cell collision, recorded before resolution so
// the operator can see the full shape of the ambiguity, per spec §4.6.
type Conflict struct {
	State    StateNum
	Terminal symbol.Symbol
	Existing Action
	New      Action
	Kind     ConflictKind
}

// resolveConflict is the explicit, named resolution policy: shift wins
// a shift/reduce conflict, and the numerically lower production wins a
// reduce/reduce conflict. Both outcomes match vartan's
// writeShiftAction/writeReduceAction behavior; here the policy is a
// named rule instead of an accident of write order.
func resolveConflict(existing, incoming Action) Action {
	switch {
	case existing.IsShift() || incoming.IsShift():
		if existing.IsShift() {
			return existing
		}
		return incoming
	default:
		if existing.ReduceProduction() <= incoming.ReduceProduction() {
			return existing
		}
		return incoming
	}
}

func conflictKind(existing, incoming Action) ConflictKind {
	if existing.IsShift() || incoming.IsShift() {
		return SRConflict
	}
	return RRConflict
}

// ParsingTable is the assembled ACTION/GOTO table for an automaton,
// plus every conflict encountered while filling it.
type ParsingTable struct {
	StateCount int

	action map[StateNum]map[symbol.Symbol]Action
	goTo   map[StateNum]map[symbol.Symbol]StateNum

	Conflicts ConflictList
}

func (t *ParsingTable) HasConflicts() bool {
	return len(t.Conflicts) > 0
}

// Action returns the ACTION table entry for (s, a), or ActionError if
// none was written.
func (t *ParsingTable) Action(s StateNum, a symbol.Symbol) Action {
	row, ok := t.action[s]
	if !ok {
		return ActionError
	}
	act, ok := row[a]
	if !ok {
		return ActionError
	}
	return act
}

// GoTo returns the GOTO table entry for (s, n), if the automaton has
// a transition on nonterminal n out of state s.
func (t *ParsingTable) GoTo(s StateNum, n symbol.Symbol) (StateNum, bool) {
	row, ok := t.goTo[s]
	if !ok {
		return 0, false
	}
	target, ok := row[n]
	return target, ok
}

func (t *ParsingTable) set(s StateNum, a symbol.Symbol, act Action) {
	row, ok := t.action[s]
	if !ok {
		row = map[symbol.Symbol]Action{}
		t.action[s] = row
	}
	if existing, ok := row[a]; ok && existing != act {
		kind := conflictKind(existing, act)
		t.Conflicts = append(t.Conflicts, Conflict{
			State:    s,
			Terminal: a,
			Existing: existing,
			New:      act,
			Kind:     kind,
		})
		row[a] = resolveConflict(existing, act)
		return
	}
	row[a] = act
}

// BuildParsingTable assembles ACTION/GOTO for the automaton of an
// augmented grammar, per spec §4.6. It always returns a fully
// populated table, even when conflicts were recorded: generation never
// aborts on a conflict, only on a precondition violation.
func BuildParsingTable(g *Grammar, a *Automaton) *ParsingTable {
	if !g.augmented {
		panic("grammar: parse-table assembly requires an augmented grammar")
	}

	t := &ParsingTable{
		StateCount: a.Len(),
		action:     map[StateNum]map[symbol.Symbol]Action{},
		goTo:       map[StateNum]map[symbol.Symbol]StateNum{},
	}

	for _, s := range a.States() {
		for _, la := range g.AssignLookaheads(s) {
			it := la.Item
			switch {
			case it.IsComplete && it.IsAugmented:
				t.set(s.Num, symbol.EOF, ActionAccept)
			case it.IsComplete:
				p, ok := g.prods.findByID(it.prod)
				if !ok {
					panic("grammar: item references an unknown production")
				}
				for lookahead := range la.Lookaheads {
					t.set(s.Num, lookahead, ReduceAction(p.Num))
				}
			case it.NextSymbol.IsTerminal():
				target, ok := s.GoTo(it.NextSymbol)
				if !ok {
					panic("grammar: shiftable item has no corresponding automaton edge")
				}
				t.set(s.Num, it.NextSymbol, ShiftAction(target))
			}
		}

		for _, sym := range s.Edges() {
			if !sym.IsNonTerminal() {
				continue
			}
			target, _ := s.GoTo(sym)
			row, ok := t.goTo[s.Num]
			if !ok {
				row = map[symbol.Symbol]StateNum{}
				t.goTo[s.Num] = row
			}
			row[sym] = target
		}
	}

	return t
}
