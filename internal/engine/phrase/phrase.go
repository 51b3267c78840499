package phrase

import (
	"strings"

	"github.com/shopspring/decimal"

	"wordcalc/internal/engine/evaluator"
	"wordcalc/internal/engine/words"
)

// spoken maps operator tokens to their spoken forms.
var spoken = map[evaluator.Kind]string{
	evaluator.KindPlus:   "plus",
	evaluator.KindMinus:  "minus",
	evaluator.KindStar:   "times",
	evaluator.KindSlash:  "divided by",
	evaluator.KindLParen: "open bracket",
	evaluator.KindRParen: "close bracket",
}

// Render transcribes an already-evaluated expression and its result. Each
// numeric literal becomes its word form, each operator its spoken form, and
// the whole phrase ends with "equals <result words>". The expression is
// sanitised with the same rules as evaluation.
func Render(expression string, result decimal.Decimal) (string, error) {
	toks, err := evaluator.Lex(evaluator.Sanitize(expression))
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(toks)+2)
	for _, tok := range toks {
		if tok.Kind == evaluator.KindNumber {
			w, err := words.FromString(tok.Text)
			if err != nil {
				return "", err
			}
			parts = append(parts, w)
			continue
		}
		parts = append(parts, spoken[tok.Kind])
	}
	parts = append(parts, "equals", words.FromDecimal(result))
	return strings.Join(parts, " "), nil
}
