package reader

// Element is one symbol reference within a production alternative: a
// bare identifier (interned by naming convention) or a quoted string
// literal (interned as a terminal named after its own text).
type Element struct {
	Name      string
	IsLiteral bool
	EBNFOp    byte // 0, or one of '*', '+', '?' when the reader rejects an EBNF operator
	Row, Col  int
}

// Alt is one `|`-separated alternative of a rule: a concatenated
// sequence of elements, or none at all for an empty (ε) production.
type Alt struct {
	Elements []Element
	Row, Col int
}

// Rule is one `name : alt (| alt)* ;` block.
type Rule struct {
	Name     string
	Alts     []Alt
	Row, Col int
}

// File is the parsed form of one .g4 source file: an optional grammar
// name declaration and its rules in source order. The first rule is
// the grammar's start rule, matching ANTLR4 convention.
type File struct {
	GrammarName string
	Rules       []Rule
}
