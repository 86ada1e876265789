// Package report renders a grammar.Snapshot and its conflicts as
// human-readable text for the CLI's --show-states/--show-table/
// --show-sets/--analyze flags, using text/template and
// text/tabwriter the way the teacher's cmd/vartan/show.go does.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

func name(symtab *symbol.Table, s symbol.Symbol) string {
	if n, ok := symtab.ToText(s); ok {
		return n
	}
	return s.String()
}

var setsTemplate = template.Must(template.New("sets").Parse(`# NULLABLE

{{ range .Nullable -}}
{{ . }}
{{ end }}
# FIRST

{{ range .First -}}
{{ . }}
{{ end }}
# FOLLOW

{{ range .Follow -}}
{{ . }}
{{ end }}`))

// RenderSets writes NULLABLE, FIRST, and FOLLOW for every nonterminal
// of g, per the --show-sets flag.
func RenderSets(w io.Writer, g *grammar.Grammar) error {
	nts := g.SymbolTable.NonTerminals()

	var nullable, first, follow []string
	for _, nt := range nts {
		n := name(g.SymbolTable, nt)
		nullable = append(nullable, fmt.Sprintf("%v: %v", n, g.Nullable(nt)))
		first = append(first, fmt.Sprintf("%v: %v", n, joinSymbols(g.SymbolTable, g.First(nt))))
		follow = append(follow, fmt.Sprintf("%v: %v", n, joinSymbols(g.SymbolTable, g.Follow(nt))))
	}

	return setsTemplate.Execute(w, struct {
		Nullable, First, Follow []string
	}{nullable, first, follow})
}

func joinSymbols(symtab *symbol.Table, set map[symbol.Symbol]struct{}) string {
	names := make([]string, 0, len(set))
	for s := range set {
		names = append(names, name(symtab, s))
	}
	sort.Strings(names)
	return "{ " + strings.Join(names, ", ") + " }"
}

// RenderStates writes every canonical LR(0)/LALR(1) state: its number,
// its kernel and closure items with assigned lookaheads, and its
// outgoing edges, per the --show-states flag.
func RenderStates(w io.Writer, g *grammar.Grammar, a *grammar.Automaton) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, s := range a.States() {
		fmt.Fprintf(tw, "state %v\n", s.Num.Int())
		for _, la := range g.AssignLookaheads(s) {
			fmt.Fprintf(tw, "  %v\t%v\n", g.ItemString(la.Item), joinSymbols(g.SymbolTable, la.Lookaheads))
		}
		for _, sym := range s.Edges() {
			target, _ := s.GoTo(sym)
			fmt.Fprintf(tw, "  on %v\tgoto %v\n", name(g.SymbolTable, sym), target.Int())
		}
	}
	return tw.Flush()
}

// RenderTable writes the dense ACTION/GOTO grid, per --show-table.
func RenderTable(w io.Writer, symtab *symbol.Table, snap *grammar.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)

	fmt.Fprint(tw, "state")
	for _, t := range snap.Terminals {
		fmt.Fprintf(tw, "\t%v", name(symtab, t))
	}
	for _, n := range snap.NonTerminals {
		fmt.Fprintf(tw, "\t%v", name(symtab, n))
	}
	fmt.Fprintln(tw)

	for s := 0; s < snap.StateCount; s++ {
		fmt.Fprintf(tw, "%v", s)
		for _, a := range snap.Action[s] {
			fmt.Fprintf(tw, "\t%v", a)
		}
		for _, g := range snap.GoTo[s] {
			if g < 0 {
				fmt.Fprint(tw, "\t")
			} else {
				fmt.Fprintf(tw, "\t%v", g)
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// RenderConflicts writes one line per recorded conflict, per §4.7.
func RenderConflicts(w io.Writer, symtab *symbol.Table, conflicts grammar.ConflictList) error {
	if len(conflicts) == 0 {
		_, err := fmt.Fprintln(w, "no conflicts")
		return err
	}
	sr, rr := conflicts.Summary()
	fmt.Fprintf(w, "%v conflicts (%v shift/reduce, %v reduce/reduce)\n", len(conflicts), sr, rr)
	for _, c := range conflicts {
		fmt.Fprintln(w, grammar.FormatConflict(symtab, c))
	}
	return nil
}
