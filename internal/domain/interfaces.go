package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// HistoryStore persists the capped history list, newest first.
type HistoryStore interface {
	Append(rec HistoryRecord) error
	List() []HistoryRecord
	Clear() error
}

// HistoryService owns history record creation and the persistence-failure
// policy (log and continue in memory).
type HistoryService interface {
	Record(expression string, result decimal.Decimal, words string) HistoryRecord
	List() []HistoryRecord
	Clear()
}

// Calculation is the outcome of one successful evaluation.
type Calculation struct {
	Expression string          `json:"expression"`
	Result     decimal.Decimal `json:"result"`
	Words      string          `json:"words"`
	Phrase     string          `json:"phrase"`
}

// CalculatorService runs the evaluate → words → record flow.
type CalculatorService interface {
	Calculate(ctx context.Context, expr Expression) (Calculation, error)
}

// Speaker plays a spoken phrase aloud. Implementations are fire-and-forget:
// starting a new utterance cancels any in-progress one, and failures never
// reach the calculation flow.
type Speaker interface {
	Speak(ctx context.Context, phrase string)
}
