// Package calculator orchestrates one calculation end to end.
//
// It guards empty input, runs the evaluator, renders the result and phrase
// as words, records the outcome in history, and fires speech playback
// without waiting on it.
package calculator
