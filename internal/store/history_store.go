package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"wordcalc/internal/domain"
)

const historyFile = "history.json"

// HistoryFileStore keeps the capped history list in memory, newest first,
// mirrored to a JSON file after every mutation.
type HistoryFileStore struct {
	path string
	log  zerolog.Logger

	mu      sync.Mutex
	records []domain.HistoryRecord
}

// NewHistoryFileStore loads any existing history from dir. An absent or
// malformed file starts the store empty; the parse failure is logged, not
// returned.
func NewHistoryFileStore(dir string, log zerolog.Logger) *HistoryFileStore {
	s := &HistoryFileStore{
		path: filepath.Join(dir, historyFile),
		log:  log,
	}
	if err := readJSON(s.path, &s.records); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("history file unreadable, starting empty")
		s.records = nil
	}
	if len(s.records) > domain.HistoryLimit {
		s.records = s.records[:domain.HistoryLimit]
	}
	return s
}

// Append inserts rec at the front, evicting the oldest record past the cap,
// then persists. The in-memory insertion always succeeds; a write failure is
// returned wrapped in domain.ErrPersistence.
func (s *HistoryFileStore) Append(rec domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]domain.HistoryRecord{rec}, s.records...)
	if len(s.records) > domain.HistoryLimit {
		s.records = s.records[:domain.HistoryLimit]
	}
	return s.persist()
}

// List returns a copy of the records, newest first.
func (s *HistoryFileStore) List() []domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Clear drops all records and persists the empty list.
func (s *HistoryFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return s.persist()
}

func (s *HistoryFileStore) persist() error {
	if err := writeJSON(s.path, s.records, 0o600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
