package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"wordcalc/internal/domain"
)

// Service records calculations into the history store.
type Service struct {
	store domain.HistoryStore
	log   zerolog.Logger
}

// New constructs a history Service over the given store.
func New(store domain.HistoryStore, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Record builds an immutable record for a successful calculation and appends
// it to the store. A persistence failure is logged and swallowed; the record
// is still returned and remains in the in-memory list for the session.
func (s *Service) Record(expression string, result decimal.Decimal, words string) domain.HistoryRecord {
	rec := domain.HistoryRecord{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result.InexactFloat64(),
		Words:      words,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.Append(rec); err != nil {
		s.log.Warn().Err(err).Str("expression", expression).
			Msg("history not persisted, continuing in memory")
	}
	return rec
}

// List returns the retained records, newest first.
func (s *Service) List() []domain.HistoryRecord {
	return s.store.List()
}

// Clear drops all history. A persistence failure is logged and swallowed.
func (s *Service) Clear() {
	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("history clear not persisted")
	}
}

// Compile-time assertion that Service implements domain.HistoryService.
var _ domain.HistoryService = (*Service)(nil)
