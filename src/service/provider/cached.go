package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"prism/src/config"
	"prism/src/service/augment"
	"prism/src/util"
)

// Cached remembers completions so repeated requirements in a batch cost one call
type Cached struct {
	next  augment.Capability
	cache *expirable.LRU[string, string]
}

// NewCached wraps next with an expiring LRU cache
func NewCached(next augment.Capability, cfg config.CacheConfig) *Cached {
	size := cfg.MaxEntries
	if size <= 0 {
		size = 256
	}
	return &Cached{
		next:  next,
		cache: expirable.NewLRU[string, string](size, nil, cfg.TTL),
	}
}

// Name returns the wrapped provider name
func (c *Cached) Name() string { return c.next.Name() }

// Complete returns a cached reply or asks the wrapped provider. Failures are not cached.
func (c *Cached) Complete(ctx context.Context, prompt string, cfg augment.CompletionConfig) (string, error) {
	key := cacheKey(c.next.Name(), prompt, cfg)
	if reply, ok := c.cache.Get(key); ok {
		util.Debug("Completion cache hit for %s", c.next.Name())
		return reply, nil
	}

	reply, err := c.next.Complete(ctx, prompt, cfg)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, reply)
	return reply, nil
}

// Len returns the number of cached completions
func (c *Cached) Len() int { return c.cache.Len() }

func cacheKey(name, prompt string, cfg augment.CompletionConfig) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%d\x00%g\x00%s", name, cfg.MaxTokens, cfg.Temperature, prompt)))
	return hex.EncodeToString(sum[:])
}
