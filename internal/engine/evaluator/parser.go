package evaluator

import (
	"fmt"
	"strconv"

	"wordcalc/internal/domain"
)

// node is one vertex of the operator-precedence tree.
type node interface {
	eval() (float64, error)
}

type literal float64

func (l literal) eval() (float64, error) { return float64(l), nil }

type negate struct{ operand node }

func (n negate) eval() (float64, error) {
	v, err := n.operand.eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binary struct {
	op          Kind
	left, right node
}

func (b binary) eval() (float64, error) {
	x, err := b.left.eval()
	if err != nil {
		return 0, err
	}
	y, err := b.right.eval()
	if err != nil {
		return 0, err
	}
	switch b.op {
	case KindPlus:
		return x + y, nil
	case KindMinus:
		return x - y, nil
	case KindStar:
		return x * y, nil
	case KindSlash:
		if y == 0 {
			return 0, domain.ErrDivisionByZero
		}
		return x / y, nil
	}
	return 0, fmt.Errorf("%w: unknown operator", domain.ErrSyntax)
}

// parser is a recursive-descent parser over the token stream:
//
//	expr   := term {('+' | '-') term}
//	term   := factor {('*' | '/') factor}
//	factor := ['+' | '-'] (number | '(' expr ')')
type parser struct {
	toks []Token
	pos  int
}

func parse(toks []Token) (node, error) {
	p := &parser{toks: toks}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("%w: unexpected %q", domain.ErrSyntax, p.toks[p.pos].Text)
	}
	return root, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != KindPlus && tok.Kind != KindMinus) {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binary{op: tok.Kind, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != KindStar && tok.Kind != KindSlash) {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = binary{op: tok.Kind, left: left, right: right}
	}
}

func (p *parser) factor() (node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of expression", domain.ErrSyntax)
	}

	// Unary sign binds to the factor that follows it.
	switch tok.Kind {
	case KindMinus:
		p.pos++
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return negate{operand: operand}, nil
	case KindPlus:
		p.pos++
		return p.factor()
	}

	switch tok.Kind {
	case KindNumber:
		p.pos++
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", domain.ErrSyntax, tok.Text)
		}
		return literal(v), nil
	case KindLParen:
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.Kind != KindRParen {
			return nil, fmt.Errorf("%w: unbalanced parentheses", domain.ErrSyntax)
		}
		p.pos++
		return inner, nil
	}
	return nil, fmt.Errorf("%w: unexpected %q", domain.ErrSyntax, tok.Text)
}
