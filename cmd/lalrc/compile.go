package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nkym/lalrc/codegen"
	"github.com/nkym/lalrc/grammar"
	"github.com/nkym/lalrc/reader"
	"github.com/nkym/lalrc/report"
	"github.com/nkym/lalrc/symbol"
	"github.com/nkym/lalrc/tester"
	"github.com/spf13/cobra"
)

func runLalrc(cmd *cobra.Command, args []string) error {
	path := args[0]

	symtab, g, err := reader.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read grammar %v: %w", path, err)
	}

	if flags.convertBNF != "" {
		if err := writeBNF(g, path, flags.convertBNF); err != nil {
			return fmt.Errorf("cannot convert to BNF: %w", err)
		}
	}

	needsTable := flags.showStates || flags.showTable || flags.showSets ||
		flags.analyze || flags.emit != "" || flags.test != ""
	if !needsTable {
		return nil
	}

	if errs := g.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return errors.New("grammar is invalid")
	}
	if err := g.Augment(); err != nil {
		return fmt.Errorf("cannot augment grammar: %w", err)
	}

	automaton, err := g.BuildLR0Automaton()
	if err != nil {
		return fmt.Errorf("cannot build LR(0) automaton: %w", err)
	}
	table := grammar.BuildParsingTable(g, automaton)
	snap := g.Snapshot(table)

	if len(snap.Conflicts) > 0 {
		sr, rr := snap.Conflicts.Summary()
		fmt.Fprintf(os.Stderr, "%v conflicts (%v shift/reduce, %v reduce/reduce)\n", len(snap.Conflicts), sr, rr)
	}

	if flags.showSets {
		if err := report.RenderSets(os.Stdout, g); err != nil {
			return err
		}
	}
	if flags.showStates {
		if err := report.RenderStates(os.Stdout, g, automaton); err != nil {
			return err
		}
	}
	if flags.showTable {
		if err := report.RenderTable(os.Stdout, symtab, snap); err != nil {
			return err
		}
	}
	if flags.analyze {
		if err := report.RenderAnalysis(os.Stdout, report.Analyze(g, snap)); err != nil {
			return err
		}
	}

	if flags.test != "" {
		if err := runTests(snap, symtab, flags.test); err != nil {
			return err
		}
	}

	if flags.emit != "" {
		if err := emitParser(snap, symtab, flags.emit); err != nil {
			return err
		}
	}

	return nil
}

func runTests(snap *grammar.Snapshot, symtab *symbol.Table, dir string) error {
	cases, err := tester.ListTestCases(dir)
	if err != nil {
		return err
	}

	results := tester.Run(snap, symtab, cases)
	failed := false
	for _, r := range results {
		fmt.Fprintln(os.Stdout, r)
		if !r.Passed {
			failed = true
		}
	}
	if failed {
		return errors.New("test failed")
	}
	return nil
}

func emitParser(snap *grammar.Snapshot, symtab *symbol.Table, dir string) error {
	pkgName := filepath.Base(dir)
	res, err := codegen.Generate(snap, symtab, pkgName)
	if err != nil {
		return err
	}
	return codegen.WriteResult(dir, pkgName, res)
}
