package domain

import (
	"errors"
	"fmt"
)

// ErrEvaluation is the user-visible error kind: the expression could not be
// turned into a finite number. All evaluator failures wrap it.
var ErrEvaluation = errors.New("evaluation error")

var (
	// ErrSyntax covers malformed input: unbalanced parentheses, dangling
	// operators, or an expression that is empty after sanitisation.
	ErrSyntax = fmt.Errorf("%w: invalid syntax", ErrEvaluation)

	// ErrDivisionByZero is reported when a divisor subexpression evaluates
	// to exactly zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrEvaluation)

	// ErrNonFinite is reported when the arithmetic result overflows to an
	// infinity or is not a number.
	ErrNonFinite = fmt.Errorf("%w: non-finite result", ErrEvaluation)
)

// ErrEmptyExpression signals that there was nothing to evaluate. It is a
// caller-side guard, not an evaluation failure, and does not wrap ErrEvaluation.
var ErrEmptyExpression = errors.New("empty expression")

// ErrPersistence wraps history storage failures. These are logged and never
// surfaced to the calculation flow; the in-memory history stays authoritative.
var ErrPersistence = errors.New("persistence error")
