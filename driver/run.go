package driver

import "fmt"

// SyntaxError reports a token the parser could not shift or reduce
// past, along with the terminals that would have been valid there.
type SyntaxError struct {
	Row, Col          int
	Token             Token
	ExpectedTerminals []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v:%v: unexpected %v %#v; expected one of %v", e.Row, e.Col, e.Token.Name, e.Token.Text, e.ExpectedTerminals)
}

// Reducer builds a parse-tree node for a completed production out of
// its already-built children (in left-to-right order), and for a
// shifted leaf token.
type Reducer interface {
	Reduce(prod int, lhsName string, children []*Node) *Node
	Shift(tok Token) *Node
}

// Run drives table with tokens read from stream using the standard
// shift-reduce LALR(1) algorithm, building a parse tree through
// reducer. It never inspects grammar or symbol internals directly;
// everything it needs comes through Table and TokenStream, so emitted
// parsers can link against driver without depending on the
// table-construction packages.
func Run(table Table, stream TokenStream, reducer Reducer) (*Node, error) {
	stateStack := []int{0}
	nodeStack := []*Node{}

	tok, err := stream.Next()
	if err != nil {
		return nil, err
	}

	for {
		state := stateStack[len(stateStack)-1]
		action := table.Action(state, tok.Terminal)

		switch {
		case action > 0:
			stateStack = append(stateStack, action)
			nodeStack = append(nodeStack, reducer.Shift(tok))
			tok, err = stream.Next()
			if err != nil {
				return nil, err
			}

		case action == 0:
			if len(nodeStack) == 0 {
				return nil, &SyntaxError{Row: tok.Row, Col: tok.Col, Token: tok}
			}
			return nodeStack[len(nodeStack)-1], nil

		case action == -1:
			return nil, &SyntaxError{
				Row:               tok.Row,
				Col:               tok.Col,
				Token:             tok,
				ExpectedTerminals: expectedTerminals(table, state),
			}

		default:
			prod := -(action + 1)
			n := table.RHSLen(prod)
			children := append([]*Node{}, nodeStack[len(nodeStack)-n:]...)
			nodeStack = nodeStack[:len(nodeStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			lhs := table.LHS(prod)
			top := stateStack[len(stateStack)-1]
			next := table.GoTo(top, lhs)
			stateStack = append(stateStack, next)
			nodeStack = append(nodeStack, reducer.Reduce(prod, table.NonTerminalName(lhs), children))
		}
	}
}

func expectedTerminals(table Table, state int) []string {
	var names []string
	for term := 0; term < table.TerminalCount(); term++ {
		if table.Action(state, term) != -1 {
			names = append(names, table.TerminalName(term))
		}
	}
	return names
}
