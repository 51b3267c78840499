package calculator

import (
	"context"

	"github.com/rs/zerolog"

	"wordcalc/internal/domain"
	"wordcalc/internal/engine/evaluator"
	"wordcalc/internal/engine/phrase"
	"wordcalc/internal/engine/words"
)

// Service runs the evaluate → words → record → speak flow.
type Service struct {
	history domain.HistoryService
	speaker domain.Speaker
	log     zerolog.Logger
}

// New constructs a calculator Service. speaker may be nil when speech is
// disabled.
func New(history domain.HistoryService, speaker domain.Speaker, log zerolog.Logger) *Service {
	return &Service{history: history, speaker: speaker, log: log}
}

// Calculate evaluates the expression and, on success, renders its word
// forms, appends a history record, and starts speech playback. An empty
// expression returns domain.ErrEmptyExpression without touching the
// evaluator; evaluation failures come back wrapping domain.ErrEvaluation and
// leave history untouched.
func (s *Service) Calculate(ctx context.Context, expr domain.Expression) (domain.Calculation, error) {
	if expr.IsEmpty() || expr.IsError() {
		return domain.Calculation{}, domain.ErrEmptyExpression
	}

	result, err := evaluator.Evaluate(expr.String())
	if err != nil {
		return domain.Calculation{}, err
	}

	resultWords := words.FromDecimal(result)
	spokenPhrase, err := phrase.Render(expr.String(), result)
	if err != nil {
		// The expression just evaluated, so the lexer cannot reject it here.
		return domain.Calculation{}, err
	}

	s.history.Record(expr.String(), result, resultWords)
	s.log.Debug().Str("expression", expr.String()).Str("result", result.String()).
		Msg("calculated")

	if s.speaker != nil {
		s.speaker.Speak(ctx, spokenPhrase)
	}

	return domain.Calculation{
		Expression: expr.String(),
		Result:     result,
		Words:      resultWords,
		Phrase:     spokenPhrase,
	}, nil
}

// Compile-time assertion that Service implements domain.CalculatorService.
var _ domain.CalculatorService = (*Service)(nil)
