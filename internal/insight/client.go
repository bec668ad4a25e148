// ABOUTME: LLM client for generating short free-text observations
// ABOUTME: OpenAI-compatible endpoint with retry, timeout, and a fixed fallback
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hollis/tend/internal/util"
)

// Fallback is shown whenever the remote call fails or times out. The user
// never sees a raw API error.
const Fallback = "The system is listening. As patterns emerge, a quiet observation will appear here."

// DefaultModel is the default chat model for insight generation.
const DefaultModel = "gpt-4o-mini"

// ClientConfig holds configuration for the insight client.
type ClientConfig struct {
	APIKey     string
	BaseURL    string // optional OpenAI-compatible endpoint override
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Client wraps the OpenAI API client with retry logic.
type Client struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates an insight client. The API key is required; everything
// else has defaults.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		client:     openai.NewClientWithConfig(apiCfg),
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Generate asks the model for a short observation over the given prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.8,
			MaxTokens:   120,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		if text == "" {
			lastErr = fmt.Errorf("attempt %d: empty completion", attempt+1)
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("insight generation failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// GenerateOrFallback is Generate with the soft-fail policy applied: any
// failure yields the fixed fallback text instead of an error.
func (c *Client) GenerateOrFallback(ctx context.Context, prompt string) string {
	text, err := c.Generate(ctx, prompt)
	if err != nil {
		return Fallback
	}
	return text
}
