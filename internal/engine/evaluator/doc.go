// Package evaluator parses and evaluates restricted arithmetic expressions.
//
// The pipeline is sanitise → lex → recursive-descent parse → tree evaluation.
// Only digits, '.', the four basic operators and parentheses survive
// sanitisation; everything else is stripped before lexing. Division is
// checked against the evaluated divisor subexpression, so 8/0.5 is fine and
// 5/(3-3) is a division-by-zero error. Results are rounded to a fixed number
// of decimal places to suppress binary floating-point noise.
package evaluator
