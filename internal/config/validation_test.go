package config

import (
	"errors"
	"testing"
	"time"
)

// validConfig returns a config that passes Validate; tests mutate one field.
func validConfig() *Config {
	return &Config{
		TelegramToken:   "123456:test-token",
		PineconeAPIKey:  "pcsk-test-key",
		GeminiAPIKey:    "AIza-test-key",
		IndexName:       DefaultIndexName,
		ModelName:       DefaultModelName,
		GenerateTimeout: DefaultGenerateTimeout,
		GenerateRate:    1.0,
		GenerateBurst:   2,
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() on valid config: %v", err)
	}
}

func TestValidate_Nil(t *testing.T) {
	var c *Config
	if err := c.Validate(); !errors.Is(err, ErrConfigNil) {
		t.Fatalf("Validate() on nil config = %v, want ErrConfigNil", err)
	}
}

func TestValidate_SentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing telegram token",
			mutate:  func(c *Config) { c.TelegramToken = "" },
			wantErr: ErrMissingTelegramToken,
		},
		{
			name:    "missing pinecone key",
			mutate:  func(c *Config) { c.PineconeAPIKey = "" },
			wantErr: ErrMissingPineconeKey,
		},
		{
			name:    "missing gemini key",
			mutate:  func(c *Config) { c.GeminiAPIKey = "" },
			wantErr: ErrMissingGeminiKey,
		},
		{
			name:    "empty index name",
			mutate:  func(c *Config) { c.IndexName = "" },
			wantErr: ErrInvalidIndexName,
		},
		{
			name:    "empty model name",
			mutate:  func(c *Config) { c.ModelName = "" },
			wantErr: ErrInvalidModelName,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.GenerateTimeout = 0 },
			wantErr: ErrInvalidGenerateTimeout,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.GenerateTimeout = -time.Second },
			wantErr: ErrInvalidGenerateTimeout,
		},
		{
			name:    "zero rate",
			mutate:  func(c *Config) { c.GenerateRate = 0 },
			wantErr: ErrInvalidGenerateRate,
		},
		{
			name:    "zero burst",
			mutate:  func(c *Config) { c.GenerateBurst = 0 },
			wantErr: ErrInvalidGenerateRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
