package evaluator

import (
	"fmt"
	"strings"

	"wordcalc/internal/domain"
)

// Sanitize strips every rune outside the evaluable set
// {0-9, '.', '+', '-', '*', '/', '(', ')'}.
func Sanitize(expression string) string {
	var b strings.Builder
	b.Grow(len(expression))
	for _, r := range expression {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lex splits an already-sanitised expression into number, operator and
// parenthesis tokens. A number is a maximal run of digits and dots; a run
// with more than one dot is a syntax error.
func Lex(sanitized string) ([]Token, error) {
	var toks []Token
	for i := 0; i < len(sanitized); {
		c := sanitized[i]
		switch c {
		case '+':
			toks = append(toks, Token{Kind: KindPlus, Text: "+"})
			i++
		case '-':
			toks = append(toks, Token{Kind: KindMinus, Text: "-"})
			i++
		case '*':
			toks = append(toks, Token{Kind: KindStar, Text: "*"})
			i++
		case '/':
			toks = append(toks, Token{Kind: KindSlash, Text: "/"})
			i++
		case '(':
			toks = append(toks, Token{Kind: KindLParen, Text: "("})
			i++
		case ')':
			toks = append(toks, Token{Kind: KindRParen, Text: ")"})
			i++
		default:
			j := i
			dots := 0
			for j < len(sanitized) && (isDigit(sanitized[j]) || sanitized[j] == '.') {
				if sanitized[j] == '.' {
					dots++
				}
				j++
			}
			text := sanitized[i:j]
			if dots > 1 || text == "." {
				return nil, fmt.Errorf("%w: bad number %q", domain.ErrSyntax, text)
			}
			toks = append(toks, Token{Kind: KindNumber, Text: text})
			i = j
		}
	}
	return toks, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
