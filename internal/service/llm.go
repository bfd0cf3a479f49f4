package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/pageza/recipe-chef/backend/internal/llm"
	"github.com/pageza/recipe-chef/backend/internal/types"
)

// excerptLimit caps how much of a bad reply is kept on a DecodeError.
const excerptLimit = 200

// LLMConfig is the process-wide generation setup, read once at startup.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// LLMService turns a free-text food desire into a recipe or a clarification
// request with one call to the generative model. It holds no mutable state
// and is safe for concurrent use.
type LLMService struct {
	client      llm.Client
	apiKey      string
	temperature float64
}

// NewLLMService creates a service backed by the OpenAI-compatible endpoint in cfg.
// An empty APIKey is accepted here and reported on the first GenerateRecipe call.
func NewLLMService(cfg LLMConfig) *LLMService {
	return NewLLMServiceWithClient(cfg, llm.New(llm.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	}))
}

// NewLLMServiceWithClient creates a service around an existing client.
func NewLLMServiceWithClient(cfg LLMConfig, client llm.Client) *LLMService {
	return &LLMService{
		client:      client,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
	}
}

// GenerateRecipe asks the model for a recipe matching desire.
//
// It returns exactly one of: a recipe result, a clarification result, or an
// error that is a *ConfigurationError, *UpstreamError, *DecodeError or
// *SchemaError. Nothing is retried. Cancellation and deadlines come from ctx.
func (s *LLMService) GenerateRecipe(ctx context.Context, desire string) (*types.RecipeResult, error) {
	if s.apiKey == "" {
		return nil, &ConfigurationError{Message: "API key for Gemini is not configured. Cannot generate recipes."}
	}

	start := time.Now()
	reply, err := s.client.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildUserPrompt(desire),
		Temperature:  s.temperature,
		JSONOutput:   true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error generating recipe", "model", s.client.Model(), "error", err)
		return nil, newUpstreamError(err)
	}

	cleaned := stripFences(reply)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		slog.WarnContext(ctx, "failed to parse JSON response from AI", "error", err, "raw", truncate(reply, excerptLimit))
		return nil, &DecodeError{Excerpt: truncate(reply, excerptLimit), Err: err}
	}

	payload, ok := decoded.(map[string]any)
	if !ok {
		return nil, &SchemaError{Message: "AI response is not a JSON object", Raw: cleaned}
	}

	result, err := ClassifyPayload(cleaned, payload)
	if err != nil {
		slog.WarnContext(ctx, "AI response did not match a known shape", "error", err, "raw", truncate(cleaned, excerptLimit))
		return nil, err
	}

	slog.InfoContext(ctx, "recipe generation completed",
		"kind", result.Kind,
		"model", s.client.Model(),
		"duration_ms", time.Since(start).Milliseconds())

	return result, nil
}

func newUpstreamError(err error) *UpstreamError {
	msg := "failed to generate recipe"
	if llm.IsAuthError(err) {
		msg = "invalid API key for Gemini, please check your configuration"
	}
	return &UpstreamError{Message: msg, StatusCode: llm.StatusCode(err), Err: err}
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
