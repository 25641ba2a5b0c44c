package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prism/src/config"
	"prism/src/service/augment"
	"prism/src/util"
)

// Ollama talks to a local Ollama server over its HTTP API
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
	retryConf  config.RetryConfig
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Format  string        `json:"format,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewOllama creates an Ollama provider
func NewOllama(cfg config.LLMConfig) *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryConf: cfg.Retry,
	}
}

// Name returns the provider name
func (c *Ollama) Name() string { return "ollama" }

// Complete sends the prompt to /api/generate without streaming
func (c *Ollama) Complete(ctx context.Context, prompt string, cfg augment.CompletionConfig) (string, error) {
	util.Debug("Sending completion to ollama model %s", c.model)

	req := ollamaRequest{
		Model:  c.model,
		Prompt: prompt,
		System: systemPrompt,
		Format: "json",
		Options: ollamaOptions{
			Temperature: cfg.Temperature,
			NumPredict:  cfg.MaxTokens,
		},
	}

	var resp ollamaResponse
	if err := c.post(ctx, "/api/generate", req, &resp); err != nil {
		util.Debug("Ollama completion failed: %v", err)
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return resp.Response, nil
}

func (c *Ollama) post(ctx context.Context, path string, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryConf.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying request to %s (attempt %d/%d) after %v", path, attempt+1, c.retryConf.MaxAttempts+1, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doPost(ctx, path, body, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *Ollama) doPost(ctx context.Context, path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Ollama) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if c.retryConf.MaxDelay > 0 && delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Ollama) shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, code := range c.retryConf.RetryOnStatus {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// APIError represents an error status returned by an HTTP provider
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, strings.TrimSpace(e.Body))
}
