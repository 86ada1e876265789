package tester

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/nkym/lalrc/driver"
)

var namedTerminalPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func isClassifiedTerminal(name string) bool {
	if !namedTerminalPattern.MatchString(name) {
		return false
	}
	return unicode.IsUpper([]rune(name)[0])
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
var numberPattern = regexp.MustCompile(`^[0-9]+`)
var spacePattern = regexp.MustCompile(`^[ \t\r\n]+`)

var numericTerminalHints = []string{"num", "number", "int", "integer", "digit"}
var identifierTerminalHints = []string{"id", "ident", "identifier", "name"}

// classifierFor guesses, from terminal names alone, which classified
// (uppercase-initial) terminal a numeric or identifier-like word
// should become. The grammar model carries no per-terminal lexical
// pattern (spec.md leaves the driver lexer's pattern language
// unspecified), so this is a best-effort heuristic: it recognizes a
// terminal named Num/Id (or close variants) by name, and otherwise
// falls back to the first classified terminal declared. Grammars with
// more than one ambiguous named terminal class need a hand-written
// TokenStream instead of this default.
func classifierFor(terminalNames []string) func(word string) (int, bool) {
	var classified []int
	for i, n := range terminalNames {
		if i == 0 {
			continue
		}
		if isClassifiedTerminal(n) {
			classified = append(classified, i)
		}
	}
	if len(classified) == 0 {
		return nil
	}

	find := func(hints []string) (int, bool) {
		for _, i := range classified {
			lower := strings.ToLower(terminalNames[i])
			for _, hint := range hints {
				if lower == hint {
					return i, true
				}
			}
		}
		return 0, false
	}

	numTerm, hasNum := find(numericTerminalHints)
	idTerm, hasID := find(identifierTerminalHints)
	fallback := classified[0]

	return func(word string) (int, bool) {
		if numberPattern.MatchString(word) {
			if hasNum {
				return numTerm, true
			}
			return fallback, true
		}
		if hasID {
			return idTerm, true
		}
		return fallback, true
	}
}

// Lexer is a small regex-based scanner over a SnapshotTable's
// terminals, matching literal terminals verbatim and delegating
// identifier/number-like runs to classifierFor's heuristic. It
// implements driver.TokenStream.
type Lexer struct {
	src      string
	pos      int
	row, col int
	literals []literalMatch
	classify func(string) (int, bool)
	names    []string
}

type literalMatch struct {
	text     string
	terminal int
}

// NewLexer builds a Lexer for src over table's terminal columns.
func NewLexer(src string, table *SnapshotTable) *Lexer {
	names := table.TerminalNames()
	var literals []literalMatch
	for i, n := range names {
		if i == 0 || isClassifiedTerminal(n) {
			continue
		}
		literals = append(literals, literalMatch{text: n, terminal: i})
	}
	sort.Slice(literals, func(i, j int) bool {
		if len(literals[i].text) != len(literals[j].text) {
			return len(literals[i].text) > len(literals[j].text)
		}
		return literals[i].text < literals[j].text
	})

	return &Lexer{
		src:      src,
		row:      1,
		col:      1,
		literals: literals,
		classify: classifierFor(names),
		names:    names,
	}
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos+i] == '\n' {
			l.row++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos += n
}

var _ driver.TokenStream = (*Lexer)(nil)

// Next implements driver.TokenStream.
func (l *Lexer) Next() (driver.Token, error) {
	for {
		if l.pos >= len(l.src) {
			return driver.Token{Terminal: 0, Name: "$", Row: l.row, Col: l.col}, nil
		}
		if m := spacePattern.FindString(l.src[l.pos:]); m != "" {
			l.advance(len(m))
			continue
		}
		break
	}

	rest := l.src[l.pos:]
	row, col := l.row, l.col

	for _, lit := range l.literals {
		if strings.HasPrefix(rest, lit.text) {
			l.advance(len(lit.text))
			return driver.Token{Terminal: lit.terminal, Name: l.names[lit.terminal], Text: lit.text, Row: row, Col: col}, nil
		}
	}

	if word := identifierPattern.FindString(rest); word != "" {
		if l.classify != nil {
			if terminal, ok := l.classify(word); ok {
				l.advance(len(word))
				return driver.Token{Terminal: terminal, Name: l.names[terminal], Text: word, Row: row, Col: col}, nil
			}
		}
		return driver.Token{}, fmt.Errorf("%v:%v: unrecognized token %q", row, col, word)
	}

	return driver.Token{}, fmt.Errorf("%v:%v: unrecognized character %q", row, col, string(rest[0]))
}
