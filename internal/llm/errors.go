package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned by NewProvider when the selected provider
// has no usable credential.
var ErrMissingAPIKey = errors.New("llm: API key not configured")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderError is an error payload reported by the service itself,
// e.g. {"error": {"code": 429, "message": "quota exceeded"}}. Message is
// the service's own human-readable text.
type ErrProviderError struct {
	Code    int
	Status  string
	Message string
}

func (e *ErrProviderError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

// ErrInvalidResponse indicates the model returned content that does not
// have the expected shape.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// mapStatusError wraps a service-reported error according to its HTTP
// status so that retry and classification can inspect it.
func mapStatusError(code int, status, message string, cause error) error {
	if message == "" {
		return &ErrProviderUnavailable{Err: cause}
	}
	pe := &ErrProviderError{Code: code, Status: status, Message: message}
	switch {
	case code == 429:
		return &ErrRateLimit{Err: pe}
	case code >= 500:
		return &ErrProviderUnavailable{Err: pe}
	}
	return pe
}
