// ABOUTME: Daily synthesis: one generated observation per calendar day
// ABOUTME: Cached in the KV store and reused until the date rolls over
package insight

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/timeutil"
)

const (
	synthesisCacheKey   = "daily_synthesis"
	synthesisHistoryKey = "daily_synthesis_history"
	historyLimit        = 30
)

// DailySynthesis is one day's generated observation plus the numbers it was
// built from.
type DailySynthesis struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Timestamp int64  `json:"timestamp"`
	Text      string `json:"synthesis"`
	Stats     Stats  `json:"stats"`
}

// KV is the key-value surface the synthesizer needs for its cache.
type KV interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
}

// Generator produces the text for a daily synthesis. Satisfied by *Client.
type Generator interface {
	GenerateOrFallback(ctx context.Context, prompt string) string
}

// Synthesizer builds at most one synthesis per day, caching it in the KV
// store. Cache failures are logged and absorbed; at worst a synthesis is
// regenerated.
type Synthesizer struct {
	kv  KV
	gen Generator
	log zerolog.Logger
	now func() time.Time
}

// NewSynthesizer returns a synthesizer over the given cache and generator.
func NewSynthesizer(kv KV, gen Generator, log zerolog.Logger) *Synthesizer {
	return &Synthesizer{kv: kv, gen: gen, log: log, now: time.Now}
}

// Today returns the synthesis for the current calendar day, generating and
// caching it on first call.
func (s *Synthesizer) Today(ctx context.Context, state models.AppState) DailySynthesis {
	today := timeutil.DateKey(s.now())

	if cached, ok := s.cached(today); ok {
		return cached
	}

	stats := Analyze(state, s.now())
	synth := DailySynthesis{
		Date:      today,
		Timestamp: s.now().UnixMilli(),
		Text:      s.gen.GenerateOrFallback(ctx, BuildPrompt(stats, state.Moments)),
		Stats:     stats,
	}
	s.cache(synth)
	return synth
}

// History returns past syntheses, newest first.
func (s *Synthesizer) History() []DailySynthesis {
	data, err := s.kv.Get(synthesisHistoryKey)
	if err != nil || len(data) == 0 {
		return nil
	}
	var history []DailySynthesis
	if err := json.Unmarshal(data, &history); err != nil {
		s.log.Warn().Err(err).Msg("could not parse synthesis history")
		return nil
	}
	return history
}

func (s *Synthesizer) cached(date string) (DailySynthesis, bool) {
	data, err := s.kv.Get(synthesisCacheKey)
	if err != nil || len(data) == 0 {
		return DailySynthesis{}, false
	}
	var synth DailySynthesis
	if err := json.Unmarshal(data, &synth); err != nil {
		s.log.Warn().Err(err).Msg("could not parse cached synthesis")
		return DailySynthesis{}, false
	}
	if synth.Date != date {
		return DailySynthesis{}, false
	}
	return synth, true
}

func (s *Synthesizer) cache(synth DailySynthesis) {
	if data, err := json.Marshal(synth); err == nil {
		if err := s.kv.Set(synthesisCacheKey, data); err != nil {
			s.log.Warn().Err(err).Msg("could not cache synthesis")
		}
	}

	history := append([]DailySynthesis{synth}, s.History()...)
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}
	if data, err := json.Marshal(history); err == nil {
		if err := s.kv.Set(synthesisHistoryKey, data); err != nil {
			s.log.Warn().Err(err).Msg("could not store synthesis history")
		}
	}
}
