package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded values are usable
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: "must be a port number between 1 and 65535"}.Error())
	}

	if u, err := url.Parse(cfg.LLMAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{Field: "LLM_API_URL", Message: "must be an absolute URL"}.Error())
	}

	if cfg.LLMModel == "" {
		errors = append(errors, ValidationError{Field: "LLM_MODEL", Message: "must not be empty"}.Error())
	}

	if cfg.LLMMaxTokens <= 0 {
		errors = append(errors, ValidationError{Field: "LLM_MAX_TOKENS", Message: "must be positive"}.Error())
	}

	if cfg.LLMTemperature < 0 || cfg.LLMTemperature > 2 {
		errors = append(errors, ValidationError{Field: "LLM_TEMPERATURE", Message: "must be between 0 and 2"}.Error())
	}

	if cfg.LLMTimeout <= 0 {
		errors = append(errors, ValidationError{Field: "LLM_TIMEOUT", Message: "must be positive"}.Error())
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		errors = append(errors, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: "must list at least one origin"}.Error())
	}
	for _, o := range cfg.CORSAllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			errors = append(errors, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: fmt.Sprintf("origin %q must be * or start with http:// or https://", o)}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
