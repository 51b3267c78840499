package speech

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/milosgajdos/go-playht"
	"github.com/rs/zerolog"

	"wordcalc/internal/domain"
)

const (
	defaultQuality     = playht.Low
	defaultOutput      = playht.Mp3
	defaultSpeed       = 1.0
	defaultSampleRate  = 24000
	defaultVoiceEngine = playht.PlayHTv2Turbo
)

// Config holds PlayHT synthesis options.
type Config struct {
	VoiceID      string
	VoiceEngine  playht.VoiceEngine
	Quality      playht.Quality
	OutputFormat playht.OutputFormat
	Speed        float32
	SampleRate   int32
}

// DefaultConfig returns the stock voice settings.
func DefaultConfig() Config {
	return Config{
		VoiceID:      "",
		Quality:      defaultQuality,
		OutputFormat: defaultOutput,
		Speed:        defaultSpeed,
		SampleRate:   defaultSampleRate,
		VoiceEngine:  defaultVoiceEngine,
	}
}

// PlayHT speaks phrases via the PlayHT streaming TTS API and the system
// speaker. Only the newest utterance plays; Speak cancels any stream still
// in flight.
type PlayHT struct {
	client   *playht.Client
	config   Config
	log      zerolog.Logger
	playback func(ctx context.Context, phrase string)

	mu          sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}
	initialised bool
}

// NewPlayHT constructs a speaker. The client reads PLAYHT_SECRET_KEY and
// PLAYHT_USER_ID from the environment.
func NewPlayHT(cfg Config, log zerolog.Logger) *PlayHT {
	p := &PlayHT{
		client: playht.NewClient(),
		config: cfg,
		log:    log,
	}
	p.playback = p.play
	return p
}

// Speak starts playback of phrase and returns immediately. The utterance is
// detached from the caller's context: it outlives the calling request or
// command, and only a newer utterance cancels it. Playback errors are
// logged, never returned.
func (p *PlayHT) Speak(ctx context.Context, phrase string) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	utterCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	speaker.Clear()
	go func() {
		defer close(done)
		defer cancel()
		p.playback(utterCtx, phrase)
	}()
}

// Wait blocks until the most recently started utterance finishes or is
// cancelled. One-shot callers use it to hold the process open for playback.
func (p *PlayHT) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done == nil {
		return
	}
	<-done
}

func (p *PlayHT) play(ctx context.Context, phrase string) {
	pr, pw := io.Pipe()

	go func() {
		req := &playht.CreateTTSStreamReq{
			Text:         phrase,
			Voice:        p.config.VoiceID,
			Quality:      p.config.Quality,
			OutputFormat: p.config.OutputFormat,
			Speed:        p.config.Speed,
			SampleRate:   p.config.SampleRate,
			VoiceEngine:  p.config.VoiceEngine,
		}
		pw.CloseWithError(p.client.TTSStream(ctx, pw, req))
	}()

	streamer, format, err := mp3.Decode(pr)
	if err != nil {
		p.log.Warn().Err(err).Msg("speech stream decode failed")
		return
	}
	defer streamer.Close()

	if err := p.initSpeaker(format); err != nil {
		p.log.Warn().Err(err).Msg("speaker init failed")
		return
	}

	played := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() { close(played) })))
	select {
	case <-ctx.Done():
	case <-played:
	}
}

// initSpeaker opens the audio device once, on the first utterance.
func (p *PlayHT) initSpeaker(format beep.Format) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialised {
		return nil
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialised = true
	return nil
}

// Compile-time assertion that PlayHT implements domain.Speaker.
var _ domain.Speaker = (*PlayHT)(nil)
