// Package symbol interns the terminal and nonterminal symbols of a
// grammar. It gives every distinct (name, kind) pair a single stable
// numeric identity so the rest of the pipeline can compare symbols by
// value instead of walking strings.
package symbol

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

type Kind string

const (
	KindNonTerminal = Kind("non-terminal")
	KindTerminal    = Kind("terminal")
	KindEpsilon     = Kind("epsilon")
	KindEndOfInput  = Kind("end-of-input")
)

func (k Kind) String() string {
	return string(k)
}

// Num is a symbol's number within its own namespace (terminal numbers
// and nonterminal numbers are independent sequences).
type Num uint16

func (n Num) Int() int {
	return int(n)
}

// Symbol is an interned grammar symbol. Two Symbol values compare equal
// iff they were produced by the same registration call (or its
// memoized repeat) on the same Table.
type Symbol uint16

const (
	maskKind    = uint16(0xc000) // top two bits select the kind
	shiftKind   = 14
	maskNum     = uint16(0x3fff)
	kindNonTerm = uint16(0) << shiftKind
	kindTerm    = uint16(1) << shiftKind
	kindEpsilon = uint16(2) << shiftKind
	kindEOF     = uint16(3) << shiftKind

	// Reserved numbers: 0 is "nil symbol". Terminal and nonterminal
	// numbering each starts at 1 with the first symbol interned in that
	// namespace; Epsilon and EOF carry number 1 in their own kinds.
	numNil        = Num(0)
	NumStartMin   = Num(1)
	NumTermMin    = Num(1)
	NameEpsilon   = "ε"
	NameEndOfLine = "$"
)

// Nil is the zero value of Symbol; it never identifies a registered
// symbol.
const Nil = Symbol(0)

// Epsilon and EOF are process-wide singletons: every Table
// sees the same two values, matching the spec's "epsilon and
// end-of-input are singletons" invariant.
const (
	Epsilon = Symbol(kindEpsilon | 1)
	EOF     = Symbol(kindEOF | 1)
)

func newSymbol(kind Kind, num Num) Symbol {
	var k uint16
	switch kind {
	case KindNonTerminal:
		k = kindNonTerm
	case KindTerminal:
		k = kindTerm
	case KindEpsilon:
		k = kindEpsilon
	case KindEndOfInput:
		k = kindEOF
	}
	return Symbol(k | uint16(num))
}

func (s Symbol) Num() Num {
	return Num(uint16(s) & maskNum)
}

func (s Symbol) IsNil() bool {
	return s == Nil
}

func (s Symbol) Kind() Kind {
	switch uint16(s) & maskKind {
	case kindNonTerm:
		return KindNonTerminal
	case kindTerm:
		return KindTerminal
	case kindEpsilon:
		return KindEpsilon
	default:
		return KindEndOfInput
	}
}

func (s Symbol) IsTerminal() bool {
	k := s.Kind()
	return k == KindTerminal || k == KindEndOfInput
}

func (s Symbol) IsNonTerminal() bool {
	return s.Kind() == KindNonTerminal
}

func (s Symbol) IsEpsilon() bool {
	return s.Kind() == KindEpsilon
}

func (s Symbol) IsEOF() bool {
	return s.Kind() == KindEndOfInput
}

func (s Symbol) String() string {
	var prefix string
	switch s.Kind() {
	case KindTerminal:
		prefix = "t"
	case KindNonTerminal:
		prefix = "n"
	case KindEpsilon:
		return NameEpsilon
	case KindEndOfInput:
		return NameEndOfLine
	}
	return fmt.Sprintf("%v%v", prefix, s.Num())
}

// symbolCompare orders Symbol values by their packed number so gods'
// ordered containers can keep terminals and nonterminals sorted the
// way the spec's "deterministic iteration" note requires.
func symbolCompare(a, b interface{}) int {
	return utils.UInt16Comparator(uint16(a.(Symbol)), uint16(b.(Symbol)))
}

// Warning is recorded on the Table (see Table.Warnings) when a name is
// reused across the terminal/nonterminal namespace divide; the intern
// call itself still succeeds with a nil error. It is not an error: spec §4.1 requires the registry to keep the two
// namespaces disjoint but to flag the collision for a human to look
// at.
type Warning struct {
	Name string
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%q is used as both a terminal and a nonterminal name", w.Name)
}

// Table interns and looks up symbols. The zero value is not usable;
// construct one with NewTable.
type Table struct {
	nameKindToSym map[string]Symbol
	symToName     map[Symbol]string
	termTokenCls  map[Symbol]string

	terms    *treeset.Set
	nonTerms *treeset.Set

	nextTermNum    Num
	nextNonTermNum Num

	warnings []error
}

func NewTable() *Table {
	t := &Table{
		nameKindToSym:  map[string]Symbol{},
		symToName:      map[Symbol]string{},
		termTokenCls:   map[Symbol]string{},
		terms:          treeset.NewWith(symbolCompare),
		nonTerms:       treeset.NewWith(symbolCompare),
		nextTermNum:    NumTermMin,
		nextNonTermNum: NumStartMin,
	}
	t.symToName[Epsilon] = NameEpsilon
	t.symToName[EOF] = NameEndOfLine
	return t
}

func namespaceKey(kind Kind, name string) string {
	return string(kind) + ":" + name
}

// Warnings returns every cross-namespace name collision observed by
// InternTerminal/InternNonTerminal so far, oldest first.
func (t *Table) Warnings() []error {
	return t.warnings
}

// InternTerminal registers a terminal named name with the given token
// class (an opaque grouping identifier such as a lexer's token-kind
// name; pass "" when the caller has no finer classification). Repeated
// calls with the same name return the same Symbol.
func (t *Table) InternTerminal(name string, tokenClass string) (Symbol, error) {
	if name == "" {
		return Nil, fmt.Errorf("a terminal name must not be empty")
	}
	key := namespaceKey(KindTerminal, name)
	if sym, ok := t.nameKindToSym[key]; ok {
		return sym, nil
	}

	if _, ok := t.nameKindToSym[namespaceKey(KindNonTerminal, name)]; ok {
		t.warnings = append(t.warnings, &Warning{Name: name})
	}

	sym := newSymbol(KindTerminal, t.nextTermNum)
	t.nextTermNum++
	t.nameKindToSym[key] = sym
	t.symToName[sym] = name
	t.termTokenCls[sym] = tokenClass
	t.terms.Add(sym)
	return sym, nil
}

// InternNonTerminal registers a nonterminal named name.
func (t *Table) InternNonTerminal(name string) (Symbol, error) {
	if name == "" {
		return Nil, fmt.Errorf("a nonterminal name must not be empty")
	}
	key := namespaceKey(KindNonTerminal, name)
	if sym, ok := t.nameKindToSym[key]; ok {
		return sym, nil
	}

	if _, ok := t.nameKindToSym[namespaceKey(KindTerminal, name)]; ok {
		t.warnings = append(t.warnings, &Warning{Name: name})
	}

	sym := newSymbol(KindNonTerminal, t.nextNonTermNum)
	t.nextNonTermNum++
	t.nameKindToSym[key] = sym
	t.symToName[sym] = name
	t.nonTerms.Add(sym)
	return sym, nil
}

func (t *Table) Find(name string) (Symbol, bool) {
	if sym, ok := t.nameKindToSym[namespaceKey(KindTerminal, name)]; ok {
		return sym, true
	}
	if sym, ok := t.nameKindToSym[namespaceKey(KindNonTerminal, name)]; ok {
		return sym, true
	}
	return Nil, false
}

func (t *Table) ToText(sym Symbol) (string, bool) {
	name, ok := t.symToName[sym]
	return name, ok
}

func (t *Table) TokenClass(sym Symbol) string {
	return t.termTokenCls[sym]
}

// Terminals returns every registered terminal, sorted by symbol
// number.
func (t *Table) Terminals() []Symbol {
	vals := t.terms.Values()
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

// NonTerminals returns every registered nonterminal, sorted by symbol
// number.
func (t *Table) NonTerminals() []Symbol {
	vals := t.nonTerms.Values()
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

func (t *Table) TerminalCount() int {
	return t.terms.Size()
}

func (t *Table) NonTerminalCount() int {
	return t.nonTerms.Size()
}
