package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default values used when the matching environment variable is unset.
const (
	DefaultServerHost     = "0.0.0.0"
	DefaultServerPort     = "8000"
	DefaultLLMAPIURL      = "https://api.openai.com/v1"
	DefaultLLMModel       = "gpt-4"
	DefaultLLMMaxTokens   = 800
	DefaultLLMTemperature = 0.7
	DefaultLLMTimeout     = 60 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Upstream completion API. The credential is supplied per request and
	// is deliberately absent here.
	LLMAPIURL      string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float32
	LLMTimeout     time.Duration

	// HTTP surface
	CORSAllowedOrigins []string
	MetricsEnabled     bool

	LogLevel slog.Level
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new validated Config from environment variables. Any
// env files given are loaded first; a missing file is not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	cfg, err := ReadConfig(envFiles...)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ReadConfig parses the environment like LoadConfig but leaves validation to
// the caller, so overrides can be applied first.
func ReadConfig(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                GetEnvironment(),
		ServerHost:         getEnv("SERVER_HOST", DefaultServerHost),
		ServerPort:         getEnv("SERVER_PORT", DefaultServerPort),
		LLMAPIURL:          getEnv("LLM_API_URL", DefaultLLMAPIURL),
		LLMModel:           getEnv("LLM_MODEL", DefaultLLMModel),
		LLMMaxTokens:       DefaultLLMMaxTokens,
		LLMTemperature:     DefaultLLMTemperature,
		LLMTimeout:         DefaultLLMTimeout,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MetricsEnabled:     true,
		LogLevel:           slog.LevelInfo,
	}

	var errs []error

	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, ValidationError{Field: "LLM_MAX_TOKENS", Message: "must be an integer"})
		}
		cfg.LLMMaxTokens = n
	}

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			errs = append(errs, ValidationError{Field: "LLM_TEMPERATURE", Message: "must be a number"})
		}
		cfg.LLMTemperature = float32(f)
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, ValidationError{Field: "LLM_TIMEOUT", Message: "must be a duration such as 60s"})
		}
		cfg.LLMTimeout = d
	}

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, ValidationError{Field: "METRICS_ENABLED", Message: "must be a boolean"})
		}
		cfg.MetricsEnabled = b
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: "must be one of debug, info, warn, error"})
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to parse configuration: %w", errors.Join(errs...))
	}

	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

// getEnv returns the environment value for key, or def when unset.
func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
