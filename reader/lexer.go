// Package reader implements the grammar-reader collaborator: a
// regex-tokenized recursive-descent parser for the ANTLR4-flavored
// `.g4` subset the core accepts (bare alternations of concatenated
// symbol sequences; no EBNF desugaring), and a builder that drives the
// core's input contract (add_terminal/add_nonterminal/add_production/
// set_start/build) from the resulting AST.
package reader

import (
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokColon
	tokPipe
	tokSemicolon
	tokStar
	tokPlus
	tokQuestion
	tokLParen
	tokRParen
	tokInvalid
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "eof"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string literal"
	case tokColon:
		return "':'"
	case tokPipe:
		return "'|'"
	case tokSemicolon:
		return "';'"
	case tokStar:
		return "'*'"
	case tokPlus:
		return "'+'"
	case tokQuestion:
		return "'?'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "invalid token"
	}
}

type token struct {
	kind     tokenKind
	text     string
	row, col int
}

// tokenPatterns is tried in order at the current offset; each pattern
// is anchored to the start of the remaining input. This is the "small
// ordered table of regexp.Regexp patterns" the reader uses instead of
// a generated DFA lexer.
var tokenPatterns = []struct {
	kind tokenKind
	re   *regexp.Regexp
}{
	{tokIdent, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*'?`)},
	{tokString, regexp.MustCompile(`^'(?:\\.|[^'\\])*'`)},
	{tokColon, regexp.MustCompile(`^:`)},
	{tokPipe, regexp.MustCompile(`^\|`)},
	{tokSemicolon, regexp.MustCompile(`^;`)},
	{tokStar, regexp.MustCompile(`^\*`)},
	{tokPlus, regexp.MustCompile(`^\+`)},
	{tokQuestion, regexp.MustCompile(`^\?`)},
	{tokLParen, regexp.MustCompile(`^\(`)},
	{tokRParen, regexp.MustCompile(`^\)`)},
}

type lexer struct {
	src      string
	pos      int
	row, col int
}

func newLexer(src string) *lexer {
	return &lexer{src: stripComments(src), row: 1, col: 1}
}

// stripComments removes `#` and `//` line comments and `/* ... */`
// block comments before tokenizing, per spec §4.9. Comments are never
// nested.
func stripComments(src string) string {
	var b strings.Builder
	i := 0
	for i < len(src) {
		switch {
		case strings.HasPrefix(src[i:], "//"), strings.HasPrefix(src[i:], "#"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				i = len(src)
				continue
			}
			for j := i; j < i+2+end+2; j++ {
				if src[j] == '\n' {
					b.WriteByte('\n')
				}
			}
			i = i + 2 + end + 2
		default:
			b.WriteByte(src[i])
			i++
		}
	}
	return b.String()
}

func (l *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.pos+i < len(l.src) && l.src[l.pos+i] == '\n' {
			l.row++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos += n
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advance(1)
			continue
		}
		break
	}
}

func (l *lexer) next() token {
	l.skipSpace()
	row, col := l.row, l.col
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, row: row, col: col}
	}

	rest := l.src[l.pos:]
	for _, p := range tokenPatterns {
		if m := p.re.FindString(rest); m != "" {
			l.advance(len(m))
			return token{kind: p.kind, text: m, row: row, col: col}
		}
	}

	bad := string(rest[0])
	l.advance(1)
	return token{kind: tokInvalid, text: bad, row: row, col: col}
}
