package tester

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nkym/lalrc/driver"
	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/symbol"
)

// Result is one test case's outcome.
type Result struct {
	Case    *TestCase
	Err     error
	Actual  string
	Passed  bool
}

// String renders r the way the teacher's TestResult.String does: one
// line naming the case, "Passed" or "Failed" plus the cause.
func (r *Result) String() string {
	if r.Passed {
		return fmt.Sprintf("Passed %v", r.Case.Path)
	}
	return fmt.Sprintf("Failed %v: %v", r.Case.Path, r.Err)
}

// Run replays every case in cases through a driver.Run over snap,
// comparing the ASCII tree driver.PrintTree renders against each
// case's expected .tree file.
func Run(snap *grammar.Snapshot, symtab *symbol.Table, cases []*TestCase) []*Result {
	table := NewTable(snap, symtab)

	var results []*Result
	for _, c := range cases {
		results = append(results, runOne(table, c))
	}
	return results
}

func runOne(table *SnapshotTable, c *TestCase) *Result {
	lexer := NewLexer(c.Input, table)
	root, err := driver.Run(table, lexer, defaultReducer{})
	if err != nil {
		return &Result{Case: c, Err: err}
	}

	var buf bytes.Buffer
	driver.PrintTree(&buf, root)
	actual := buf.String()

	if strings.TrimRight(actual, "\n") != strings.TrimRight(c.ExpectedTree, "\n") {
		return &Result{
			Case:   c,
			Err:    fmt.Errorf("parse tree mismatch"),
			Actual: actual,
		}
	}
	return &Result{Case: c, Passed: true, Actual: actual}
}

type defaultReducer struct{}

func (defaultReducer) Shift(tok driver.Token) *driver.Node {
	return &driver.Node{Name: tok.Name, Text: tok.Text, Row: tok.Row, Col: tok.Col}
}

func (defaultReducer) Reduce(prod int, lhsName string, children []*driver.Node) *driver.Node {
	return &driver.Node{Name: lhsName, Children: children}
}
