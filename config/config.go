package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort     = "8080"
	defaultLLMBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultLLMModel       = "gemini-2.5-flash"
	defaultLLMTemperature = 0.7
	defaultAllowedOrigin  = "http://localhost:5173"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	LogLevel slog.Level

	// Generative model configuration
	LLMBaseURL     string
	LLMModel       string
	LLMTemperature float64
	// LLMTimeout bounds a single generation when positive. Zero leaves the
	// call bounded only by the caller's context.
	LLMTimeout time.Duration

	// GeminiAPIKey may be empty; the recipe service reports that on first use.
	GeminiAPIKey string
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// HasAPIKey reports whether an upstream credential was found.
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	// .env files are a local convenience; CI and production get real env vars.
	if env == Development || env == Test {
		if err := loadDotEnv(); err != nil {
			return nil, err
		}
	}

	cfg, err := loadFromEnv(env)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() error {
	file := envOr("DOTENV_FILE", ".env")
	if err := godotenv.Load(file); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	return nil
}

func loadFromEnv(env Environment) (*Config, error) {
	cfg := &Config{
		Env:            env,
		ServerHost:     os.Getenv("SERVER_HOST"),
		ServerPort:     envOr("SERVER_PORT", defaultServerPort),
		AllowedOrigins: parseList(envOr("CORS_ALLOWED_ORIGINS", defaultAllowedOrigin)),
		LLMBaseURL:     envOr("LLM_BASE_URL", defaultLLMBaseURL),
		LLMModel:       envOr("LLM_MODEL", defaultLLMModel),
		LLMTemperature: defaultLLMTemperature,
	}

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		cfg.LLMTemperature = t
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		cfg.LLMTimeout = d
	}

	level, err := ParseLogLevel(envOr("LOG_LEVEL", defaultLogLevel(env)))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	key, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.GeminiAPIKey = key

	return cfg, nil
}

// loadAPIKey looks for the Gemini key in the environment, then in a file
// named by GEMINI_API_KEY_FILE, then in the Docker secrets directory.
func loadAPIKey() (string, error) {
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}

	if path := os.Getenv("GEMINI_API_KEY_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("API key file %s is empty", path)
		}
		return key, nil
	}

	return readSecret("gemini_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := envOr("SECRETS_DIR", "/run/secrets")
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func defaultLogLevel(env Environment) string {
	if env == Development {
		return "debug"
	}
	return "info"
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
