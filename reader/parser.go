package reader

import (
	"fmt"

	"github.com/nkym/lalrc/lerr"
)

type parser struct {
	toks   []token
	pos    int
	source string
	errs   lerr.List
}

// Parse tokenizes and parses src into a File. sourceName is used only
// for error messages (typically the grammar file's path). Parsing
// never aborts on the first malformed rule: it resynchronizes at the
// next `;` and keeps going, so a caller sees every structural problem
// in one pass, per the error model's list-of-errors policy.
func Parse(src string, sourceName string) (*File, error) {
	lx := newLexer(src)
	var toks []token
	for {
		tok := lx.next()
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			break
		}
	}

	p := &parser{toks: toks, source: sourceName}
	f := p.parseFile()
	if p.errs.HasErrors() {
		return f, p.errs
	}
	return f, nil
}

func (p *parser) tok() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...interface{}) {
	p.errs = append(p.errs, &lerr.Error{
		Cause:      fmt.Errorf(format, args...),
		SourceName: p.source,
		Row:        t.row,
		Col:        t.col,
	})
}

// consume advances past a token of the expected kind, recording an
// error and leaving the cursor in place otherwise.
func (p *parser) consume(kind tokenKind) (token, bool) {
	if p.tok().kind == kind {
		return p.advance(), true
	}
	p.errorf(p.tok(), "expected %v, found %v", kind, p.tok().kind)
	return token{}, false
}

// resyncToSemicolon skips tokens until it passes a `;` or reaches eof,
// so one malformed rule does not prevent the rest of the file from
// being checked.
func (p *parser) resyncToSemicolon() {
	for p.tok().kind != tokEOF && p.tok().kind != tokSemicolon {
		p.advance()
	}
	if p.tok().kind == tokSemicolon {
		p.advance()
	}
}

func (p *parser) parseFile() *File {
	f := &File{}

	if p.tok().kind == tokIdent && p.tok().text == "grammar" {
		p.advance()
		if name, ok := p.consume(tokIdent); ok {
			f.GrammarName = name.text
		}
		p.consume(tokSemicolon)
	}

	for p.tok().kind != tokEOF {
		start := p.pos
		rule := p.parseRule()
		if rule != nil {
			f.Rules = append(f.Rules, *rule)
		}
		if p.pos == start {
			// parseRule made no progress; force it so we terminate.
			p.advance()
		}
	}

	return f
}

func (p *parser) parseRule() *Rule {
	nameTok, ok := p.consume(tokIdent)
	if !ok {
		p.resyncToSemicolon()
		return nil
	}
	rule := &Rule{Name: nameTok.text, Row: nameTok.row, Col: nameTok.col}

	if _, ok := p.consume(tokColon); !ok {
		p.resyncToSemicolon()
		return rule
	}

	rule.Alts = append(rule.Alts, p.parseAlt())
	for p.tok().kind == tokPipe {
		p.advance()
		rule.Alts = append(rule.Alts, p.parseAlt())
	}

	p.consume(tokSemicolon)
	return rule
}

func (p *parser) parseAlt() Alt {
	alt := Alt{Row: p.tok().row, Col: p.tok().col}
	for {
		switch p.tok().kind {
		case tokIdent:
			t := p.advance()
			if t.text == "ε" || t.text == "epsilon" {
				continue
			}
			el := Element{Name: t.text, Row: t.row, Col: t.col}
			if p.tok().kind == tokStar || p.tok().kind == tokPlus || p.tok().kind == tokQuestion {
				op := p.advance()
				el.EBNFOp = op.text[0]
				p.errorf(op, "EBNF operator %v on %q is not supported; desugar %q by hand into explicit productions", op.text, t.text, t.text)
			}
			alt.Elements = append(alt.Elements, el)
		case tokString:
			t := p.advance()
			el := Element{Name: t.text, IsLiteral: true, Row: t.row, Col: t.col}
			if p.tok().kind == tokStar || p.tok().kind == tokPlus || p.tok().kind == tokQuestion {
				op := p.advance()
				el.EBNFOp = op.text[0]
				p.errorf(op, "EBNF operator %v on %v is not supported; desugar it by hand into explicit productions", op.text, t.text)
			}
			alt.Elements = append(alt.Elements, el)
		case tokLParen:
			t := p.advance()
			p.errorf(t, "grouping is not supported; desugar %q by hand into explicit productions", "(...)")
			depth := 1
			for depth > 0 && p.tok().kind != tokEOF {
				switch p.advance().kind {
				case tokLParen:
					depth++
				case tokRParen:
					depth--
				}
			}
		default:
			return alt
		}
	}
}
