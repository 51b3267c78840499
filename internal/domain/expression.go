package domain

import "strings"

// ErrorText is the literal shown in place of an expression after a failed
// evaluation.
const ErrorText = "Error"

// glyphs maps display-only operator symbols to their ASCII equivalents.
// Input arrives with whatever the presentation layer shows; the expression
// always stores ASCII.
var glyphs = strings.NewReplacer("×", "*", "÷", "/")

// displayGlyphs is the reverse mapping, applied only when rendering.
var displayGlyphs = strings.NewReplacer("*", "×", "/", "÷")

// Expression is the accumulated input string representing an arithmetic
// formula before evaluation. It is a value type: mutations return a new
// Expression, and the presentation layer owns the single live instance.
type Expression string

// NewExpression builds an expression from raw presentation text, translating
// display glyphs to ASCII operators.
func NewExpression(text string) Expression {
	return Expression(glyphs.Replace(text))
}

// String returns the stored ASCII form.
func (e Expression) String() string { return string(e) }

// Append adds user input to the expression, translating display glyphs to
// their ASCII operators. Appending to an errored expression starts a fresh
// expression from the appended text rather than extending the Error literal.
func (e Expression) Append(input string) Expression {
	input = glyphs.Replace(input)
	if e.IsError() {
		return Expression(input)
	}
	return e + Expression(input)
}

// Clear resets the expression to empty.
func (e Expression) Clear() Expression { return "" }

// Replace swaps in a stored expression wholesale, e.g. when a history entry
// is reloaded.
func (e Expression) Replace(text string) Expression {
	return NewExpression(text)
}

// Fail puts the expression into the error state.
func (e Expression) Fail() Expression { return ErrorText }

// IsError reports whether the expression holds the error literal.
func (e Expression) IsError() bool { return string(e) == ErrorText }

// IsEmpty reports whether there is anything to evaluate.
func (e Expression) IsEmpty() bool { return strings.TrimSpace(string(e)) == "" }

// Display returns the expression with ASCII operators swapped back to their
// display glyphs.
func (e Expression) Display() string {
	if e.IsError() {
		return string(e)
	}
	return displayGlyphs.Replace(string(e))
}
