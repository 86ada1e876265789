// Package codegen serializes a grammar.Snapshot into a self-contained
// Go package: a regex-based lexer, a table-driven parser built on
// driver.Run, a parse-tree convenience wrapper, and a _test.go smoke
// test — the way the teacher's cmd/vartan show.go renders reports,
// but targeting Go source instead of human-readable text. Before
// emission the dense ACTION/GOTO grids are shrunk with the compressor
// package, the same technique the teacher applies to vartan's own
// emitted tables.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"text/template"
	"unicode"

	"github.com/nkym/lalrc/compressor"
	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

// Result holds the generated source of one emitted parser package. It
// never imports lalrc's grammar-construction packages; the only
// intra-module dependencies the generated files carry are driver and
// compressor, the runtime-support packages meant for reuse by emitted
// code (§4.11).
type Result struct {
	Lexer  []byte
	Parser []byte
	Tree   []byte
	Test   []byte
}

// namedTerminalPattern matches the naming convention reader uses for
// terminals that stand for a lexical class rather than literal source
// text: an uppercase-initial identifier such as Id or Num. Everything
// else interned as a terminal is the literal text a quoted rule
// element named, e.g. "if" or "+", and the emitted lexer can match it
// verbatim.
var namedTerminalPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func isClassifiedTerminal(name string) bool {
	if !namedTerminalPattern.MatchString(name) {
		return false
	}
	return unicode.IsUpper([]rune(name)[0])
}

// Generate renders snap as pkgName. symtab must be the table snap was
// derived from, so terminal and nonterminal columns can be named.
func Generate(snap *grammar.Snapshot, symtab *symbol.Table, pkgName string) (*Result, error) {
	if pkgName == "" {
		pkgName = "parser"
	}

	data, err := buildTemplateData(snap, symtab, pkgName)
	if err != nil {
		return nil, err
	}

	lexer, err := renderGoFile(lexerTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("codegen: rendering lexer: %w", err)
	}
	parser, err := renderGoFile(parserTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("codegen: rendering parser: %w", err)
	}
	tree, err := renderGoFile(treeTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("codegen: rendering tree: %w", err)
	}
	test, err := renderGoFile(testTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("codegen: rendering test: %w", err)
	}

	return &Result{Lexer: lexer, Parser: parser, Tree: tree, Test: test}, nil
}

func renderGoFile(tmpl *template.Template, data *templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// A malformed template is a codegen bug, not a user error;
		// return the unformatted source so the failure is inspectable
		// rather than swallowed.
		return buf.Bytes(), fmt.Errorf("gofmt: %w", err)
	}
	return formatted, nil
}

// WriteResult writes res's four files into dir, creating it if
// necessary. This is the only place in codegen that touches the
// filesystem, per §5's "I/O only at the outermost calls" rule.
func WriteResult(dir, pkgName string, res *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string][]byte{
		"lexer.go":                     res.Lexer,
		"parser.go":                    res.Parser,
		"tree.go":                      res.Tree,
		pkgName + "_generated_test.go": res.Test,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			return fmt.Errorf("codegen: writing %v: %w", name, err)
		}
	}
	return nil
}

type literalEntry struct {
	Text     string
	Terminal int
}

type classifiedEntry struct {
	Name     string
	Terminal int
}

type templateData struct {
	Package string

	TerminalNames    []string
	NonTerminalNames []string
	EOFIndex         int

	Literals   []literalEntry
	Classified []classifiedEntry

	ActionUniqueEntries []int
	ActionRowNums       []int
	ActionRowCount      int
	ActionColCount      int

	GoToEntries         []int
	GoToBounds          []int
	GoToRowDisplacement []int
	GoToRowCount        int
	GoToColCount        int

	LHS    []int
	RHSLen []int
}

func buildTemplateData(snap *grammar.Snapshot, symtab *symbol.Table, pkgName string) (*templateData, error) {
	name := func(s symbol.Symbol) string {
		n, _ := symtab.ToText(s)
		return n
	}

	termNames := make([]string, len(snap.Terminals))
	for i, s := range snap.Terminals {
		termNames[i] = name(s)
	}
	ntNames := make([]string, len(snap.NonTerminals))
	for i, s := range snap.NonTerminals {
		ntNames[i] = name(s)
	}

	var literals []literalEntry
	var classified []classifiedEntry
	for i, n := range termNames {
		if i == 0 {
			continue // $ is never lexed from source text
		}
		if isClassifiedTerminal(n) {
			classified = append(classified, classifiedEntry{Name: n, Terminal: i})
		} else {
			literals = append(literals, literalEntry{Text: n, Terminal: i})
		}
	}
	// Longest literal first, so e.g. "==" is tried before "=" during
	// lexing; ties break alphabetically for determinism.
	sort.Slice(literals, func(i, j int) bool {
		if len(literals[i].Text) != len(literals[j].Text) {
			return len(literals[i].Text) > len(literals[j].Text)
		}
		return literals[i].Text < literals[j].Text
	})

	actionTab, err := compressor.CompressAction(snap.Action)
	if err != nil {
		return nil, fmt.Errorf("codegen: compressing ACTION table: %w", err)
	}
	goToTab, err := compressor.CompressGoTo(snap.GoTo)
	if err != nil {
		return nil, fmt.Errorf("codegen: compressing GOTO table: %w", err)
	}

	lhs := make([]int, len(snap.Productions))
	rhsLen := make([]int, len(snap.Productions))
	ntIndex := make(map[symbol.Symbol]int, len(snap.NonTerminals))
	for i, s := range snap.NonTerminals {
		ntIndex[s] = i
	}
	for _, p := range snap.Productions {
		lhs[p.Num] = ntIndex[p.LHS]
		rhsLen[p.Num] = len(p.RHS)
	}

	return &templateData{
		Package: pkgName,

		TerminalNames:    termNames,
		NonTerminalNames: ntNames,
		EOFIndex:         0,

		Literals:   literals,
		Classified: classified,

		ActionUniqueEntries: actionTab.UniqueEntries,
		ActionRowNums:       actionTab.RowNums,
		ActionRowCount:      actionTab.OriginalRowCount,
		ActionColCount:      actionTab.OriginalColCount,

		GoToEntries:         goToTab.Entries,
		GoToBounds:          goToTab.Bounds,
		GoToRowDisplacement: goToTab.RowDisplacement,
		GoToRowCount:        goToTab.OriginalRowCount,
		GoToColCount:        goToTab.OriginalColCount,

		LHS:    lhs,
		RHSLen: rhsLen,
	}, nil
}
