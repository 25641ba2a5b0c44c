// Package augment enriches a deterministic analysis with suggestions from an
// AI provider. It never fails: any provider problem yields a copy of the
// input marked as degraded.
package augment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prism/src/model"
	"prism/src/util"
)

// CompletionConfig carries generation settings for one completion
type CompletionConfig struct {
	MaxTokens   int
	Temperature float64
}

// Capability is the only way the core reaches an AI provider
type Capability interface {
	// Name returns the provider name reported on augmented results
	Name() string

	// Complete sends a prompt and returns the raw reply text
	Complete(ctx context.Context, prompt string, cfg CompletionConfig) (string, error)
}

// ErrNoCapability is the degraded reason when no provider is configured
var ErrNoCapability = errors.New("no AI provider configured")

// Adapter applies a capability to analysis results
type Adapter struct {
	capability Capability
	cfg        CompletionConfig
	timeout    time.Duration
}

// NewAdapter creates an adapter. A nil capability is allowed; every call then
// returns a degraded copy.
func NewAdapter(capability Capability, cfg CompletionConfig, timeout time.Duration) *Adapter {
	return &Adapter{capability: capability, cfg: cfg, timeout: timeout}
}

// Augment returns a new result with provider findings merged in. The input is
// never modified.
func (a *Adapter) Augment(ctx context.Context, result *model.AnalysisResult) *model.AnalysisResult {
	out := result.Clone()
	out.Augmentation.Requested = true

	if a == nil || a.capability == nil {
		return degrade(out, "none", ErrNoCapability)
	}
	name := a.capability.Name()
	out.Augmentation.Provider = name

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := a.capability.Complete(ctx, BuildPrompt(result), a.cfg)
	if err != nil {
		return degrade(out, name, err)
	}

	suggestions, err := ParseResponse(reply)
	if err != nil {
		return degrade(out, name, err)
	}

	Merge(out, suggestions)
	util.Debug("Augmentation via %s merged in %v", name, time.Since(start))
	return out
}

func degrade(out *model.AnalysisResult, provider string, err error) *model.AnalysisResult {
	failure := &model.AugmentationFailure{Provider: provider, Err: err}
	util.Warn("%v; continuing with rule-based results", failure)

	out.Augmentation.Degraded = true
	out.Augmentation.Reason = reasonFor(err)
	return out
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "provider timed out"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.Is(err, ErrMalformedResponse):
		return fmt.Sprintf("malformed provider response: %v", err)
	}
	return err.Error()
}
