// Package llm talks to a hosted generative model through its
// OpenAI-compatible chat-completions endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client sends one prompt and returns the model's raw text reply.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	// JSONOutput asks the upstream for a JSON object response.
	JSONOutput bool
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// HTTPClient is optional; tests point it at an httptest server.
	HTTPClient *http.Client
}

type client struct {
	openai openai.Client
	model  string
}

// New builds a Client. The SDK's automatic retries are disabled: every
// Complete call is exactly one upstream request.
func New(cfg Config) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &client{
		openai: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *client) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.JSONOutput {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	slog.DebugContext(ctx, "llm chat completed",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *client) Model() string {
	return c.model
}

// StatusCode extracts the upstream HTTP status from a Complete error,
// or 0 when the failure happened before a response arrived.
func StatusCode(err error) int {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsAuthError reports whether the upstream rejected the credential.
// Gemini answers an invalid key with 400 API_KEY_INVALID; OpenAI-style
// servers use 401/403.
func IsAuthError(err error) bool {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		msg := strings.ToLower(apiErr.Error())
		return strings.Contains(msg, "api_key_invalid") || strings.Contains(msg, "api key not valid")
	default:
		return false
	}
}
