package app

import (
	"os"

	"github.com/rs/zerolog"

	"wordcalc/internal/domain"
	"wordcalc/internal/logging"
	calculatorsvc "wordcalc/internal/services/calculator"
	historysvc "wordcalc/internal/services/history"
	"wordcalc/internal/speech"
	"wordcalc/internal/store"
)

// Wire bundles the store, services, and speaker for the binaries.
type Wire struct {
	Log        zerolog.Logger
	Store      domain.HistoryStore
	History    domain.HistoryService
	Calculator domain.CalculatorService
	Speaker    domain.Speaker
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	historyStore := store.NewHistoryFileStore(cfg.Home, log)
	historySvc := historysvc.New(historyStore, log)

	var speaker domain.Speaker = speech.Noop{}
	if cfg.Speech {
		speaker = speech.FromEnv(log)
	}

	calculatorSvc := calculatorsvc.New(historySvc, speaker, log)

	return &Wire{
		Log:        log,
		Store:      historyStore,
		History:    historySvc,
		Calculator: calculatorSvc,
		Speaker:    speaker,
	}, nil
}
