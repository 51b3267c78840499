package evaluator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"wordcalc/internal/domain"
)

// Precision is the number of fractional digits kept in results. Rounding
// through decimal suppresses binary floating-point artifacts such as
// 0.1+0.2 == 0.30000000000000004.
const Precision = 10

// Evaluate parses and evaluates an arithmetic expression. The input is
// sanitised first, so the caller may pass raw user text. Pure function;
// every failure wraps domain.ErrEvaluation.
func Evaluate(expression string) (decimal.Decimal, error) {
	sanitized := Sanitize(expression)
	if sanitized == "" {
		return decimal.Zero, fmt.Errorf("%w: nothing to evaluate", domain.ErrSyntax)
	}

	toks, err := Lex(sanitized)
	if err != nil {
		return decimal.Zero, err
	}
	root, err := parse(toks)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := root.eval()
	if err != nil {
		return decimal.Zero, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero, domain.ErrNonFinite
	}
	return decimal.NewFromFloat(v).Round(Precision), nil
}
