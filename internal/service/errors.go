package service

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrUpstream      = errors.New("upstream error")
	ErrDecode        = errors.New("decode error")
	ErrSchema        = errors.New("schema error")
)

// ConfigurationError means the service cannot run as configured, e.g. no API key.
// The user has to fix the environment; retrying will not help.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// UpstreamError wraps a failed call to the generative model (network, auth, quota).
type UpstreamError struct {
	Message    string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// DecodeError means the model reply was not valid JSON even after fence stripping.
type DecodeError struct {
	Excerpt string // truncated raw reply
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse recipe data from AI: %v (response starts with %q)", e.Err, e.Excerpt)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// SchemaError means the reply was JSON but matched neither the recipe nor
// the clarification shape.
type SchemaError struct {
	Message string
	Raw     string
	Payload map[string]any
	Err     error
}

func (e *SchemaError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ErrorKind names the category of a generation error for API responses.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrSchema):
		return "schema"
	default:
		return "internal"
	}
}
