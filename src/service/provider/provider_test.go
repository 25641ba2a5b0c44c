package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/src/config"
	"prism/src/service/augment"
)

func ollamaConfig(url string) config.LLMConfig {
	return config.LLMConfig{
		Provider: "ollama",
		Model:    "llama3",
		BaseURL:  url,
		Timeout:  5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:   2,
			BackoffFactor: 2,
			InitialDelay:  time.Millisecond,
			MaxDelay:      10 * time.Millisecond,
			RetryOnStatus: []int{503},
		},
	}
}

func TestOllama_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.Equal(t, "hello", req.Prompt)
		assert.False(t, req.Stream)
		assert.Equal(t, 128, req.Options.NumPredict)

		_ = json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3", Response: `{"improved_text":"x"}`, Done: true})
	}))
	defer srv.Close()

	reply, err := NewOllama(ollamaConfig(srv.URL)).Complete(context.Background(), "hello", augment.CompletionConfig{MaxTokens: 128})

	require.NoError(t, err)
	assert.Equal(t, `{"improved_text":"x"}`, reply)
}

func TestOllama_RetriesOnConfiguredStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{Response: "ok"})
	}))
	defer srv.Close()

	reply, err := NewOllama(ollamaConfig(srv.URL)).Complete(context.Background(), "p", augment.CompletionConfig{})

	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOllama_DoesNotRetryOtherStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad model", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewOllama(ollamaConfig(srv.URL)).Complete(context.Background(), "p", augment.CompletionConfig{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "bad model")
	assert.Equal(t, int32(1), calls.Load())
}

type countingCapability struct {
	calls atomic.Int32
	err   error
}

func (c *countingCapability) Name() string { return "counting" }

func (c *countingCapability) Complete(_ context.Context, prompt string, _ augment.CompletionConfig) (string, error) {
	c.calls.Add(1)
	if c.err != nil {
		return "", c.err
	}
	return "reply:" + prompt, nil
}

func TestCached_ReusesReplies(t *testing.T) {
	next := &countingCapability{}
	c := NewCached(next, config.CacheConfig{Enabled: true, TTL: time.Minute, MaxEntries: 8})

	for i := 0; i < 3; i++ {
		reply, err := c.Complete(context.Background(), "same", augment.CompletionConfig{})
		require.NoError(t, err)
		assert.Equal(t, "reply:same", reply)
	}
	_, err := c.Complete(context.Background(), "other", augment.CompletionConfig{})
	require.NoError(t, err)

	assert.Equal(t, int32(2), next.calls.Load())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "counting", c.Name())
}

func TestCached_DoesNotCacheFailures(t *testing.T) {
	next := &countingCapability{err: errors.New("down")}
	c := NewCached(next, config.CacheConfig{TTL: time.Minute})

	_, err := c.Complete(context.Background(), "p", augment.CompletionConfig{})
	require.Error(t, err)
	_, err = c.Complete(context.Background(), "p", augment.CompletionConfig{})
	require.Error(t, err)

	assert.Equal(t, int32(2), next.calls.Load())
	assert.Zero(t, c.Len())
}

func TestLimited_HonoursCancellation(t *testing.T) {
	next := &countingCapability{}
	l := NewLimited(next, 0.001)

	_, err := l.Complete(context.Background(), "first", augment.CompletionConfig{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Complete(ctx, "second", augment.CompletionConfig{})

	assert.Error(t, err)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestNew_NoProvider(t *testing.T) {
	cfg := config.DefaultConfig()

	capability, err := New(context.Background(), cfg)

	require.NoError(t, err)
	assert.Nil(t, capability)
}

func TestNew_WrapsOllama(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLM = ollamaConfig("http://localhost:11434")
	cfg.Concurrency.RateLimitEnabled = true

	capability, err := New(context.Background(), cfg)

	require.NoError(t, err)
	cached, ok := capability.(*Cached)
	require.True(t, ok)
	_, ok = cached.next.(*Limited)
	assert.True(t, ok)
	assert.Equal(t, "ollama", capability.Name())
}
