package grammar

import (
	"strconv"

	"github.com/nkym/lalrc/symbol"
)

// ConflictList is the set of collisions recorded while assembling a
// parsing table. An empty list is the caller's signal that the
// grammar is genuinely LALR(1) under the shipped lookahead algorithm.
type ConflictList []Conflict

// Summary groups conflicts by kind, for the CLI's one-line "N SR, M
// RR" style reporting.
func (cl ConflictList) Summary() (sr, rr int) {
	for _, c := range cl {
		if c.Kind == SRConflict {
			sr++
		} else {
			rr++
		}
	}
	return sr, rr
}

// FormatConflict renders a conflict as spec §4.7 requires:
// "state <id>, terminal <name>: <existing> vs <new>".
func FormatConflict(symtab *symbol.Table, c Conflict) string {
	name, ok := symtab.ToText(c.Terminal)
	if !ok {
		name = "?"
	}
	return "state " + strconv.Itoa(c.State.Int()) + ", terminal " + name + ": " + c.Existing.String() + " vs " + c.New.String()
}
