package reader

import (
	"fmt"
	"os"
	"unicode"

	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/lerr"
	"github.com/nkym/lalrc/symbol"
)

// Build drives the core's input contract from a parsed File: every
// rule name is registered with add_nonterminal, every RHS reference is
// auto-interned by naming convention (add_terminal for an
// uppercase-initial name or a quoted literal, add_nonterminal
// otherwise), one add_production call per alternative, and the first
// rule in source order becomes the grammar's start symbol. Structural
// problems (a rule defined more than once, a name that cannot be
// interned) are collected and returned as a lerr.List rather than
// aborting the walk. Elements carrying an EBNF operator were already
// reported by Parse and are skipped here.
func Build(f *File, sourceName string) (*symbol.Table, *grammar.Grammar, error) {
	symtab := symbol.NewTable()
	g := grammar.NewGrammar(symtab)
	var errs lerr.List

	if len(f.Rules) == 0 {
		errs = append(errs, &lerr.Error{
			Cause:      fmt.Errorf("grammar has no rules"),
			SourceName: sourceName,
		})
		return symtab, g, errs
	}

	lhs := make(map[string]symbol.Symbol, len(f.Rules))
	for _, rule := range f.Rules {
		if _, dup := lhs[rule.Name]; dup {
			errs = append(errs, &lerr.Error{
				Cause:      fmt.Errorf("rule %v is defined more than once", rule.Name),
				SourceName: sourceName,
				Row:        rule.Row,
				Col:        rule.Col,
			})
			continue
		}
		sym, err := symtab.InternNonTerminal(rule.Name)
		if err != nil {
			errs = append(errs, &lerr.Error{Cause: err, SourceName: sourceName, Row: rule.Row, Col: rule.Col})
			continue
		}
		lhs[rule.Name] = sym
	}

	for _, rule := range f.Rules {
		ruleSym, ok := lhs[rule.Name]
		if !ok {
			continue
		}
		for _, alt := range rule.Alts {
			rhs, err := resolveAlt(symtab, lhs, alt)
			if err != nil {
				errs = append(errs, &lerr.Error{Cause: err, SourceName: sourceName, Row: alt.Row, Col: alt.Col})
				continue
			}
			if _, err := g.AddProduction(ruleSym, rhs); err != nil {
				errs = append(errs, &lerr.Error{Cause: err, SourceName: sourceName, Row: rule.Row, Col: rule.Col})
			}
		}
	}

	if err := g.SetStart(lhs[f.Rules[0].Name]); err != nil {
		errs = append(errs, &lerr.Error{Cause: err, SourceName: sourceName})
	}

	if errs.HasErrors() {
		return symtab, g, errs
	}
	return symtab, g, nil
}

// resolveAlt interns every element of alt, skipping elements whose
// EBNF operator the reader already flagged as an error during
// parsing.
func resolveAlt(symtab *symbol.Table, lhs map[string]symbol.Symbol, alt Alt) ([]symbol.Symbol, error) {
	var rhs []symbol.Symbol
	for _, el := range alt.Elements {
		if el.EBNFOp != 0 {
			continue
		}
		sym, err := resolveElement(symtab, lhs, el)
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, sym)
	}
	return rhs, nil
}

func resolveElement(symtab *symbol.Table, lhs map[string]symbol.Symbol, el Element) (symbol.Symbol, error) {
	if el.IsLiteral {
		text := unquote(el.Name)
		return symtab.InternTerminal(text, "")
	}
	if sym, ok := lhs[el.Name]; ok {
		return sym, nil
	}
	if isTerminalName(el.Name) {
		return symtab.InternTerminal(el.Name, "")
	}
	return symtab.InternNonTerminal(el.Name)
}

func isTerminalName(name string) bool {
	if name == "" {
		return false
	}
	return unicode.IsUpper([]rune(name)[0])
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// ReadFile reads and parses a .g4 file at path, then builds a grammar
// from it. This is the only place in reader that touches the
// filesystem, per spec §5's "I/O only at the outermost calls" rule.
func ReadFile(path string) (*symbol.Table, *grammar.Grammar, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := Parse(string(content), path)
	if err != nil {
		return nil, nil, err
	}
	return Build(f, path)
}
