package domain

import "time"

// HistoryLimit caps the number of retained history records. Insertion beyond
// the cap evicts the oldest record, strict FIFO by insertion order.
const HistoryLimit = 50

// HistoryRecord is one past calculation and its word transcription.
// Immutable once created; owned by the history store.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Words      string    `json:"words"`
	Timestamp  time.Time `json:"timestamp"`
}
