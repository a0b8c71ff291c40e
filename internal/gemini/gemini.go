// Package gemini adapts the Gemini API to the pipeline's Generator port.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iolobot/iolo/internal/log"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrEmptyResponse indicates the model call succeeded but returned no
// usable text.
var ErrEmptyResponse = errors.New("model returned empty response")

// Config holds what the adapter needs to call the model.
type Config struct {
	APIKey string
	Model  string

	// Timeout bounds one generation call. The indicator and the user are
	// both waiting on it, so a stuck call must not hang the message unit.
	Timeout time.Duration

	// Rate and Burst pace generation calls across all in-flight messages.
	// Pacing, not retrying: a limited call waits, it is never re-issued.
	Rate  float64
	Burst int
}

// Generator implements rag.Generator over the Gemini API. One blocking call
// per prompt; no streaming, no retries. The client is stateless and safe
// for concurrent use across message units.
type Generator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  log.Logger
}

// New creates the Gemini client.
func New(ctx context.Context, cfg Config, logger log.Logger) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Generator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		logger:  logger,
	}, nil
}

// Generate sends the prompt and returns the model's raw text. Cancelling
// ctx cancels both the limiter wait and the call itself.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("content generated",
		"model", g.model,
		"prompt_bytes", len(prompt),
		"answer_bytes", len(text),
		"elapsed", time.Since(start),
	)

	return text, nil
}
