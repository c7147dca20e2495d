package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8000"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	ModelDir       string `env:"MODEL_DIR" default:"models"`
	VectorizerFile string `env:"VECTORIZER_FILE" default:"tfidf_vectorizer.json"`
	ClassifierFile string `env:"CLASSIFIER_FILE" default:"sentiment_model.json"`
	FallbackScorer string `env:"FALLBACK_SCORER" default:"rule"`
	Stopwords      string `env:"STOPWORDS" default:"nltk"`

	CORSAllowOrigins string  `env:"CORS_ALLOW_ORIGINS" default:"*"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" default:"40"`
	BodyLimit        string  `env:"BODY_LIMIT" default:"64K"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// AllowOrigins splits CORS_ALLOW_ORIGINS on commas, dropping blanks.
func (c *Config) AllowOrigins() []string {
	var origins []string
	for origin := range strings.SplitSeq(c.CORSAllowOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// RateLimitEnabled reports whether POST routes are rate limited.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

func validate(cfg *Config) error {
	enums := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"LOG_FORMAT", cfg.LogFormat, []string{"text", "json", "pretty"}},
		{"FALLBACK_SCORER", cfg.FallbackScorer, []string{"rule", "vader"}},
		{"STOPWORDS", cfg.Stopwords, []string{"nltk", "extended"}},
	}
	for _, e := range enums {
		if !slices.Contains(e.allowed, e.value) {
			return fmt.Errorf("%s must be one of %s, got %q", e.name, strings.Join(e.allowed, ", "), e.value)
		}
	}

	if strings.TrimSpace(cfg.ModelDir) == "" {
		return errors.New("MODEL_DIR is required")
	}

	if cfg.RateLimitRPS < 0 {
		return errors.New("RATE_LIMIT_RPS must not be negative")
	}
	if cfg.RateLimitEnabled() && cfg.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	if _, err := bytes.Parse(cfg.BodyLimit); err != nil {
		return fmt.Errorf("BODY_LIMIT must be a size like 64K or 1M: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	return nil
}
