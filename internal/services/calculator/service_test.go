package calculator_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordcalc/internal/domain"
	"wordcalc/internal/services/calculator"
	"wordcalc/internal/services/history"
	"wordcalc/internal/store"
)

// spySpeaker records the last phrase handed to it.
type spySpeaker struct {
	phrases []string
}

func (s *spySpeaker) Speak(_ context.Context, phrase string) {
	s.phrases = append(s.phrases, phrase)
}

func newService(t *testing.T, speaker domain.Speaker) (*calculator.Service, *history.Service) {
	t.Helper()
	hist := history.New(store.NewHistoryFileStore(t.TempDir(), zerolog.Nop()), zerolog.Nop())
	return calculator.New(hist, speaker, zerolog.Nop()), hist
}

func TestCalculate_HappyPath(t *testing.T) {
	spy := &spySpeaker{}
	svc, hist := newService(t, spy)

	calc, err := svc.Calculate(context.Background(), domain.Expression("12+3"))
	require.NoError(t, err)

	assert.Equal(t, "15", calc.Result.String())
	assert.Equal(t, "Fifteen", calc.Words)
	assert.Equal(t, "Twelve plus Three equals Fifteen", calc.Phrase)

	recs := hist.List()
	require.Len(t, recs, 1)
	assert.Equal(t, "12+3", recs[0].Expression)
	assert.Equal(t, "Fifteen", recs[0].Words)

	require.Len(t, spy.phrases, 1)
	assert.Equal(t, calc.Phrase, spy.phrases[0])
}

func TestCalculate_EmptyExpressionIsGuarded(t *testing.T) {
	svc, hist := newService(t, nil)

	_, err := svc.Calculate(context.Background(), domain.Expression("  "))
	assert.ErrorIs(t, err, domain.ErrEmptyExpression)
	assert.NotErrorIs(t, err, domain.ErrEvaluation)
	assert.Empty(t, hist.List())
}

func TestCalculate_ErroredExpressionIsGuarded(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.Calculate(context.Background(), domain.Expression("2+2").Fail())
	assert.ErrorIs(t, err, domain.ErrEmptyExpression)
}

func TestCalculate_EvaluationErrorLeavesHistoryUntouched(t *testing.T) {
	spy := &spySpeaker{}
	svc, hist := newService(t, spy)

	_, err := svc.Calculate(context.Background(), domain.Expression("2++"))
	assert.ErrorIs(t, err, domain.ErrEvaluation)
	assert.Empty(t, hist.List())
	assert.Empty(t, spy.phrases)
}

func TestCalculate_DivisionByZero(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.Calculate(context.Background(), domain.Expression("5/(3-3)"))
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestCalculate_NilSpeaker(t *testing.T) {
	svc, _ := newService(t, nil)

	calc, err := svc.Calculate(context.Background(), domain.Expression("1+1"))
	require.NoError(t, err)
	assert.Equal(t, "Two", calc.Words)
}
