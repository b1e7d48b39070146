package calc

import (
	"fmt"

	"github.com/lookbusy1344/bigint/bigint"
)

// Parser is a recursive-descent evaluator over the calculator grammar:
//
//	expr   = term (("+" | "-") term)*
//	term   = unary (("*" | "/" | "%") unary)*
//	unary  = "-" unary | primary
//	primary = NUMBER | "(" expr ")"
//
// Results are produced directly as bigint.Int values rather than an
// intermediate AST, mirroring how small calculator tools in the corpus
// fold parsing and evaluation together for a single-pass grammar this
// shallow.
type Parser struct {
	lex    *Lexer
	cur    Token
	tracer bigint.Tracer
}

// NewParser creates a parser over expr.
func NewParser(expr string) (*Parser, error) {
	p := &Parser{lex: NewLexer(expr)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// Eval parses and evaluates expr in one call.
func Eval(expr string) (*bigint.Int, error) {
	return EvalTraced(expr, nil)
}

// EvalTraced is Eval with an optional Tracer notified of every
// division/multiplication kernel step evaluating expr triggers, in
// left-to-right evaluation order.
func EvalTraced(expr string, tracer bigint.Tracer) (*bigint.Int, error) {
	p, err := NewParser(expr)
	if err != nil {
		return nil, err
	}
	p.tracer = tracer
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, fmt.Errorf("calc: unexpected token %s", p.cur)
	}
	return v, nil
}

func (p *Parser) parseExpr() (*bigint.Int, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		z := bigint.New()
		if op == TokenPlus {
			if err := z.AddN(left, right); err != nil {
				return nil, err
			}
		} else {
			if err := z.Sub(left, right); err != nil {
				return nil, err
			}
		}
		left = z
	}
	return left, nil
}

func (p *Parser) parseTerm() (*bigint.Int, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenStar || p.cur.Type == TokenSlash || p.cur.Type == TokenPercent {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		z := bigint.New()
		switch op {
		case TokenStar:
			if err := z.MulNTraced(p.tracer, left, right); err != nil {
				return nil, err
			}
		case TokenSlash:
			if err := bigint.QuoRemTraced(left, right, z, nil, p.tracer); err != nil {
				return nil, err
			}
		case TokenPercent:
			if err := bigint.QuoRemTraced(left, right, nil, z, p.tracer); err != nil {
				return nil, err
			}
		}
		left = z
	}
	return left, nil
}

func (p *Parser) parseUnary() (*bigint.Int, error) {
	if p.cur.Type == TokenMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return v.ChangeSign(), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*bigint.Int, error) {
	switch p.cur.Type {
	case TokenNumber:
		lit := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := bigint.ParseString(lit)
		if err != nil {
			return nil, fmt.Errorf("calc: invalid numeral %q: %w", lit, err)
		}
		return v, nil
	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != TokenRParen {
			return nil, fmt.Errorf("calc: expected ')' at column %d", p.cur.Col)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("calc: unexpected token %s", p.cur)
	}
}
