package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flags = struct {
	showStates bool
	showTable  bool
	showSets   bool
	analyze    bool
	convertBNF string
	emit       string
	test       string
}{}

var rootCmd = &cobra.Command{
	Use:   "lalrc <grammar-file>",
	Short: "Build an LALR(1) parsing table from an ANTLR4-flavored grammar",
	Long: `lalrc reads a .g4-style grammar, builds its LALR(1) parsing table,
and reports on it:
- Prints FIRST/FOLLOW/NULLABLE sets, states, and the dense ACTION/GOTO
  table on request.
- Converts the grammar to a traditional BNF listing.
- Runs a directory of input/expected-tree test cases against the
  freshly built table.
- Emits a standalone, table-driven Go parser package.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runLalrc,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flags.showStates, "show-states", false, "print every LR(0)/LALR(1) state with its items and lookaheads")
	f.BoolVar(&flags.showTable, "show-table", false, "print the dense ACTION/GOTO table")
	f.BoolVar(&flags.showSets, "show-sets", false, "print NULLABLE, FIRST, and FOLLOW for every nonterminal")
	f.BoolVar(&flags.analyze, "analyze", false, "print a grammar-complexity summary")
	f.StringVar(&flags.convertBNF, "convert-bnf", "", "write the grammar as traditional BNF to this file")
	f.StringVar(&flags.emit, "emit", "", "emit a standalone Go parser package to this directory")
	f.StringVar(&flags.test, "test", "", "run <name>.txt/<name>.tree test cases from this directory against the built table")
}

// Execute runs the CLI, matching the teacher's cmd/vartan Execute
// shape: print any error to stderr and let main.go turn it into a
// non-zero exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
