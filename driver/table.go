package driver

// Table is the minimal accessor an emitted parser needs at run time.
// It is deliberately narrower than grammar.ParsingTable so the
// generated parse loop reads its tables through driver rather than
// through the table-construction package's own types. codegen emits
// an implementation backed by the compressed tables from the
// compressor package, so generated code imports both driver and
// compressor.
type Table interface {
	// Action returns the encoded ACTION[state][terminal] entry: a
	// positive state id to shift, 0 to accept, a value at or below -1
	// to reduce production -(value+1) (with exactly -1 meaning error).
	Action(state, terminal int) int
	// GoTo returns GOTO[state][nonterminal].
	GoTo(state, nonterminal int) int
	// LHS returns the nonterminal column index of a production's
	// left-hand side.
	LHS(prod int) int
	// RHSLen returns the number of symbols on a production's
	// right-hand side.
	RHSLen(prod int) int
	// TerminalCount returns the number of ACTION columns, including $.
	TerminalCount() int
	// TerminalName returns the display name of a terminal column, for
	// syntax-error messages.
	TerminalName(terminal int) string
	// NonTerminalName returns the display name of a nonterminal
	// column, for reduce-node labeling.
	NonTerminalName(nonterminal int) string
	// EOF returns the terminal column index reserved for $.
	EOF() int
}
