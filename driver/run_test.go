package driver

import "testing"

// fakeTable implements the single-terminal grammar s -> Id: terminal
// column 0 is $, column 1 is Id; nonterminal column 0 is the
// augmented start, column 1 is s.
type fakeTable struct{}

func (fakeTable) Action(state, terminal int) int {
	switch {
	case state == 0 && terminal == 1:
		return 2 // shift into state 2
	case state == 1 && terminal == 0:
		return 0 // accept
	case state == 2 && terminal == 0:
		return -2 // reduce production 1 (s -> Id)
	default:
		return -1
	}
}

func (fakeTable) GoTo(state, nonterminal int) int {
	if state == 0 && nonterminal == 1 {
		return 1
	}
	return -1
}

func (fakeTable) LHS(prod int) int {
	if prod == 1 {
		return 1
	}
	return 0
}

func (fakeTable) RHSLen(prod int) int {
	if prod == 1 {
		return 1
	}
	return 1
}

func (fakeTable) TerminalCount() int { return 2 }

func (fakeTable) TerminalName(terminal int) string {
	if terminal == 0 {
		return "$"
	}
	return "Id"
}

func (fakeTable) NonTerminalName(nonterminal int) string {
	if nonterminal == 1 {
		return "s"
	}
	return "s'"
}

func (fakeTable) EOF() int { return 0 }

type fakeStream struct {
	toks []Token
	pos  int
}

func (s *fakeStream) Next() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{Terminal: 0, Name: "$"}, nil
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

type treeReducer struct{}

func (treeReducer) Shift(tok Token) *Node {
	return &Node{Name: tok.Name, Text: tok.Text}
}

func (treeReducer) Reduce(prod int, lhsName string, children []*Node) *Node {
	return &Node{Name: lhsName, Children: children}
}

func TestRunAcceptsSingleTerminalGrammar(t *testing.T) {
	stream := &fakeStream{toks: []Token{{Terminal: 1, Name: "Id", Text: "x"}}}
	root, err := Run(fakeTable{}, stream, treeReducer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if root.Name != "s" || len(root.Children) != 1 || root.Children[0].Text != "x" {
		t.Fatalf("unexpected tree: %+v", root)
	}
}

func TestRunReportsSyntaxError(t *testing.T) {
	stream := &fakeStream{toks: []Token{{Terminal: 0, Name: "$"}}}
	_, err := Run(fakeTable{}, stream, treeReducer{})
	if err == nil {
		t.Fatalf("expected a syntax error when Id never arrives")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected a *SyntaxError, got %T", err)
	}
}
