package app

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the backoffice binaries.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	APIBaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:3000"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"15s"`

	Locale string `envconfig:"LOCALE" default:"es"`

	RedisAddr    string        `envconfig:"REDIS_ADDR"`
	ToastTTL     time.Duration `envconfig:"TOAST_TTL" default:"3s"`
	ToastChannel string        `envconfig:"TOAST_CHANNEL" default:"backoffice:toasts"`

	MetricsAddr string `envconfig:"METRICS_ADDR"`

	DevAPIAddr      string `envconfig:"DEVAPI_ADDR" default:":3000"`
	DevAPISeed      bool   `envconfig:"DEVAPI_SEED" default:"true"`
	DevAPIRateLimit int    `envconfig:"DEVAPI_RATE_LIMIT" default:"600"`
}

// LoadConfig reads configuration from an optional .env file and the environment.
// Variables already present in the environment win over the file.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// a missing file is fine, envconfig defaults still apply
		_ = godotenv.Load(f)
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, errors.New("api base url must be provided")
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.APITimeout <= 0 {
		return nil, errors.New("api timeout must be positive")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Level maps LOG_LEVEL to a slog level. Unknown values fall back to info.
func (c *Config) Level() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
