package provider

import (
	"context"
	"math"

	"golang.org/x/time/rate"

	"prism/src/service/augment"
)

// Limited throttles calls to a provider shared by batch workers
type Limited struct {
	next    augment.Capability
	limiter *rate.Limiter
}

// NewLimited wraps next with a token bucket of rps requests per second.
// A non-positive rps disables throttling.
func NewLimited(next augment.Capability, rps float64) *Limited {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = int(math.Max(1, math.Ceil(rps)))
	}
	return &Limited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// Name returns the wrapped provider name
func (l *Limited) Name() string { return l.next.Name() }

// Complete waits for a token, then calls the wrapped provider
func (l *Limited) Complete(ctx context.Context, prompt string, cfg augment.CompletionConfig) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.next.Complete(ctx, prompt, cfg)
}
