package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamlowkey/studybuddy/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an
// event row and a structured log line.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	logger   zerolog.Logger
}

// WithLogging wraps a Provider with event logging. events may be nil, in
// which case only the log line is written.
func WithLogging(p Provider, providerName string, events store.EventRepo, logger zerolog.Logger) Provider {
	return &LoggingProvider{
		inner:    p,
		provider: providerName,
		events:   events,
		logger:   logger.With().Str("component", "llm").Str("provider", providerName).Logger(),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	ev := l.logger.Debug()
	if err != nil {
		ev = l.logger.Warn().Err(err)
	}
	ev.Str("purpose", purpose).
		Str("model", data.Model).
		Int64("latency_ms", data.LatencyMs).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Msg("llm request")

	// Event logging never fails the request.
	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			l.logger.Warn().Err(logErr).Msg("failed to record llm request event")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}
