package speech

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"wordcalc/internal/domain"
)

// Waiter is implemented by speakers whose current utterance can be awaited.
type Waiter interface {
	Wait()
}

// Noop is the disabled speaker.
type Noop struct{}

// Speak discards the phrase.
func (Noop) Speak(context.Context, string) {}

// FromEnv returns a PlayHT speaker when credentials are present in the
// environment, otherwise the disabled speaker.
func FromEnv(log zerolog.Logger) domain.Speaker {
	if os.Getenv("PLAYHT_SECRET_KEY") == "" || os.Getenv("PLAYHT_USER_ID") == "" {
		log.Debug().Msg("speech disabled, no PlayHT credentials")
		return Noop{}
	}
	return NewPlayHT(DefaultConfig(), log)
}

// Compile-time assertion that Noop implements domain.Speaker.
var _ domain.Speaker = Noop{}
