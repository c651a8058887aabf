package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamlowkey/studybuddy/internal/llm"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// ConfigMissing is soft: it never surfaces as Failed.
	ConfigMissing Kind = iota + 1
	NetworkError
	ProviderError
	MalformedResponse
)

func (k Kind) String() string {
	switch k {
	case ConfigMissing:
		return "config_missing"
	case NetworkError:
		return "network_error"
	case ProviderError:
		return "provider_error"
	case MalformedResponse:
		return "malformed_response"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified fetch failure.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func malformed(reason string, cause error) *Error {
	return &Error{Kind: MalformedResponse, Reason: reason, Err: cause}
}

// classify maps a provider error to a fetch failure.
func classify(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: NetworkError, Reason: "request timed out", Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: NetworkError, Reason: "request canceled", Err: err}
	}

	var pe *llm.ErrProviderError
	if errors.As(err, &pe) {
		reason := pe.Message
		if reason == "" {
			reason = fmt.Sprintf("service returned status %d", pe.Code)
		}
		return &Error{Kind: ProviderError, Reason: reason, Err: err}
	}

	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return &Error{Kind: ProviderError, Reason: "rate limited by the recommendation service", Err: err}
	}

	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return malformed("response was not a list of resources", err)
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return malformed("response was cut off", err)
	}

	return &Error{Kind: NetworkError, Reason: "could not reach the recommendation service", Err: err}
}
