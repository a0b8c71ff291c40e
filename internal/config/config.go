// Package config provides application configuration with multi-source
// priority.
//
// Sources, highest to lowest:
//  1. Environment variables
//  2. Config file (~/.iolo/config.yaml or ./config.yaml)
//  3. Defaults
//
// Secrets (bot token, API keys) are only ever read from the environment and
// are masked by MarshalJSON/String so they cannot leak through logging.
// Validation is fail-fast with sentinel errors usable with errors.Is().
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the fixed backing services. The index and model identifiers
// are consumed by the pipeline, never produced by it.
const (
	DefaultIndexName = "biology-grade-11"
	DefaultModelName = "gemini-1.5-flash"

	// DefaultGenerateTimeout bounds one generation call. The upstream
	// behavior had no timeout at all; a stuck model call would pin the
	// typing indicator forever, so we impose one.
	DefaultGenerateTimeout = 90 * time.Second
)

// Config stores application configuration.
// SECURITY: sensitive fields are masked in MarshalJSON; update it when
// adding new secrets.
type Config struct {
	// Messaging
	TelegramToken string `mapstructure:"telegram_token" json:"telegram_token"` // SENSITIVE: masked in MarshalJSON

	// Vector index
	PineconeAPIKey string `mapstructure:"pinecone_api_key" json:"pinecone_api_key"` // SENSITIVE: masked in MarshalJSON
	IndexName      string `mapstructure:"index_name" json:"index_name"`

	// Generative model
	GeminiAPIKey    string        `mapstructure:"gemini_api_key" json:"gemini_api_key"` // SENSITIVE: masked in MarshalJSON
	ModelName       string        `mapstructure:"model_name" json:"model_name"`
	GenerateTimeout time.Duration `mapstructure:"generate_timeout" json:"generate_timeout"`

	// GenerateRate paces generation calls across all in-flight messages,
	// in requests per second; GenerateBurst is the limiter burst size.
	GenerateRate  float64 `mapstructure:"generate_rate" json:"generate_rate"`
	GenerateBurst int     `mapstructure:"generate_burst" json:"generate_burst"`

	// Logging
	LogJSON bool `mapstructure:"log_json" json:"log_json"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".iolo")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults plus env cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("index_name", DefaultIndexName)
	viper.SetDefault("model_name", DefaultModelName)
	viper.SetDefault("generate_timeout", DefaultGenerateTimeout)
	viper.SetDefault("generate_rate", 1.0)
	viper.SetDefault("generate_burst", 2)
	viper.SetDefault("log_json", false)
}

// bindEnvVariables binds environment variables explicitly. Secrets are
// env-only; they have no defaults and should not live in config files.
func bindEnvVariables() {
	// Hardcoded keys cannot fail to bind; a panic here is a bug.
	mustBind := func(key, envVar string) {
		if err := viper.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("telegram_token", "IOLO_TELEGRAM_TOKEN")
	mustBind("pinecone_api_key", "PINECONE_API_KEY")
	mustBind("gemini_api_key", "GEMINI_API_KEY")
	mustBind("index_name", "IOLO_INDEX_NAME")
	mustBind("model_name", "IOLO_MODEL_NAME")
	mustBind("generate_timeout", "IOLO_GENERATE_TIMEOUT")
}

// maskedValue replaces secret content in serialized config. Full-width
// blocks avoid accidental substring matches against real secret material.
const maskedValue = "████████"

// maskSecret masks a secret for safe logging. Short secrets are fully
// masked; longer ones keep the first and last two characters for debugging.
// This defends against accidental logging, nothing more.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return maskedValue
	}
	return s[:2] + "<" + maskedValue + ">" + s[len(s)-2:]
}

// MarshalJSON implements json.Marshaler with sensitive fields masked.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	a := alias(c)
	a.TelegramToken = maskSecret(a.TelegramToken)
	a.PineconeAPIKey = maskSecret(a.PineconeAPIKey)
	a.GeminiAPIKey = maskSecret(a.GeminiAPIKey)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of secrets.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
