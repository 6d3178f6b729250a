package tts

import (
	"context"
	"time"
)

// WithTimeout bounds each Synthesize call. A zero or negative duration
// returns the synthesizer unchanged.
func WithTimeout(s Synthesizer, d time.Duration) Synthesizer {
	if d <= 0 {
		return s
	}
	return &timeoutSynthesizer{inner: s, timeout: d}
}

type timeoutSynthesizer struct {
	inner   Synthesizer
	timeout time.Duration
}

func (t *timeoutSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Synthesize(ctx, text, language)
}
