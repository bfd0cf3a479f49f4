package config

import (
	"fmt"
	"net/url"
	"os"
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

// ValidationErrors aggregates every problem found in one pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// requiredEnvVars lists variables that must be set explicitly per environment.
// The API key is deliberately absent: its absence is reported lazily by the
// recipe service.
var requiredEnvVars = map[Environment][]string{
	Development: {},
	Test:        {},
	CI:          {},
	Production:  {"SERVER_PORT"},
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	for _, name := range requiredEnvVars[cfg.Env] {
		if os.Getenv(name) == "" {
			errs = append(errs, ValidationError{Field: name, Message: "required environment variable is not set"})
		}
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if cfg.LLMTemperature < 0 || cfg.LLMTemperature > 2 {
		errs = append(errs, ValidationError{Field: "LLM_TEMPERATURE", Message: "must be between 0 and 2"})
	}

	if cfg.LLMTimeout < 0 {
		errs = append(errs, ValidationError{Field: "LLM_TIMEOUT", Message: "must not be negative"})
	}

	if strings.TrimSpace(cfg.LLMModel) == "" {
		errs = append(errs, ValidationError{Field: "LLM_MODEL", Message: "must not be empty"})
	}

	if u, err := url.Parse(cfg.LLMBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "LLM_BASE_URL", Message: fmt.Sprintf("invalid URL %q", cfg.LLMBaseURL)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
