package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	SessionSecret string `env:"SESSION_SECRET"`
	AdminUsername string `env:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// CorpusPath overrides the embedded reference corpus when set.
	CorpusPath string `env:"CORPUS_PATH"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// Per-user feedback submission limit, enforced via Redis when configured.
	SubmitRateLimit  int           `env:"SUBMIT_RATE_LIMIT" default:"10"`
	SubmitRateWindow time.Duration `env:"SUBMIT_RATE_WINDOW" default:"1m"`

	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" default:"24h"`
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

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"SESSION_SECRET": cfg.SessionSecret,
		"ADMIN_PASSWORD": cfg.AdminPassword,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 characters")
	}
	if len(cfg.AdminPassword) < 8 {
		return errors.New("ADMIN_PASSWORD must be at least 8 characters")
	}
	if cfg.SubmitRateLimit <= 0 {
		return errors.New("SUBMIT_RATE_LIMIT must be positive")
	}
	if cfg.SubmitRateWindow <= 0 {
		return errors.New("SUBMIT_RATE_WINDOW must be positive")
	}

	return nil
}
