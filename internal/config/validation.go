package config

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Validate. Check with errors.Is().
var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrMissingTelegramToken indicates the Telegram bot token is not set.
	ErrMissingTelegramToken = errors.New("missing Telegram token")

	// ErrMissingPineconeKey indicates the Pinecone API key is not set.
	ErrMissingPineconeKey = errors.New("missing Pinecone API key")

	// ErrMissingGeminiKey indicates the Gemini API key is not set.
	ErrMissingGeminiKey = errors.New("missing Gemini API key")

	// ErrInvalidIndexName indicates the vector index name is invalid.
	ErrInvalidIndexName = errors.New("invalid index name")

	// ErrInvalidModelName indicates the model name is invalid.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidGenerateTimeout indicates the generation timeout is out of range.
	ErrInvalidGenerateTimeout = errors.New("invalid generate timeout")

	// ErrInvalidGenerateRate indicates the generation rate limit is out of range.
	ErrInvalidGenerateRate = errors.New("invalid generate rate")
)

// Validate validates configuration values, fail-fast.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	// Credentials: all three backends are required for the bot to do
	// anything useful, so their absence is a startup error.
	if c.TelegramToken == "" {
		return fmt.Errorf("%w: set IOLO_TELEGRAM_TOKEN (see https://core.telegram.org/bots#botfather)",
			ErrMissingTelegramToken)
	}
	if c.PineconeAPIKey == "" {
		return fmt.Errorf("%w: set PINECONE_API_KEY", ErrMissingPineconeKey)
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY\n"+
			"Get your API key at: https://ai.google.dev/gemini-api/docs/api-key",
			ErrMissingGeminiKey)
	}

	if c.IndexName == "" {
		return fmt.Errorf("%w: index_name cannot be empty", ErrInvalidIndexName)
	}
	if c.ModelName == "" {
		return fmt.Errorf("%w: model_name cannot be empty", ErrInvalidModelName)
	}

	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidGenerateTimeout, c.GenerateTimeout)
	}

	if c.GenerateRate <= 0 {
		return fmt.Errorf("%w: must be positive, got %g", ErrInvalidGenerateRate, c.GenerateRate)
	}
	if c.GenerateBurst < 1 {
		return fmt.Errorf("%w: burst must be at least 1, got %d", ErrInvalidGenerateRate, c.GenerateBurst)
	}

	return nil
}
