// Package phrase renders an evaluated expression as a spoken-style English
// transcription, e.g. "Twelve plus Three equals Fifteen".
//
// The expression is tokenised with the evaluator's lexer rather than
// substituted with regular expressions, so number words can never collide
// with digit patterns mid-substitution.
package phrase
