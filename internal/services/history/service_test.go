package history_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordcalc/internal/domain"
	"wordcalc/internal/engine/evaluator"
	"wordcalc/internal/services/history"
	"wordcalc/internal/store"
)

// failingStore keeps records in memory but always fails to persist.
type failingStore struct {
	records []domain.HistoryRecord
}

func (f *failingStore) Append(rec domain.HistoryRecord) error {
	f.records = append([]domain.HistoryRecord{rec}, f.records...)
	return errors.Join(domain.ErrPersistence, errors.New("disk full"))
}

func (f *failingStore) List() []domain.HistoryRecord { return f.records }

func (f *failingStore) Clear() error {
	f.records = nil
	return domain.ErrPersistence
}

func TestRecord_AssignsIdentity(t *testing.T) {
	svc := history.New(store.NewHistoryFileStore(t.TempDir(), zerolog.Nop()), zerolog.Nop())

	rec := svc.Record("2+3*4", decimal.NewFromInt(14), "Fourteen")
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Timestamp.IsZero())
	assert.Equal(t, "2+3*4", rec.Expression)
	assert.Equal(t, float64(14), rec.Result)

	got := svc.List()
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
}

func TestRecord_PersistenceFailureIsSwallowed(t *testing.T) {
	fs := &failingStore{}
	svc := history.New(fs, zerolog.Nop())

	rec := svc.Record("1+1", decimal.NewFromInt(2), "Two")
	assert.NotEmpty(t, rec.ID)
	assert.Len(t, svc.List(), 1, "in-memory history stays authoritative")

	svc.Clear()
	assert.Empty(t, svc.List())
}

func TestRecord_RoundTripsThroughEvaluator(t *testing.T) {
	svc := history.New(store.NewHistoryFileStore(t.TempDir(), zerolog.Nop()), zerolog.Nop())

	result, err := evaluator.Evaluate("10/4+1")
	require.NoError(t, err)
	svc.Record("10/4+1", result, "Three Point Five")

	got := svc.List()
	require.Len(t, got, 1)

	again, err := evaluator.Evaluate(got[0].Expression)
	require.NoError(t, err)
	assert.InDelta(t, got[0].Result, again.InexactFloat64(), 1e-9)
}
