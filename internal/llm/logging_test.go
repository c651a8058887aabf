package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/teamlowkey/studybuddy/internal/store"
)

type recordingEvents struct {
	store.EventRepo
	got []store.LLMRequestEventData
	err error
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.got = append(r.got, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`[]`),
		Usage:   Usage{InputTokens: 7, OutputTokens: 3},
	})
	events := &recordingEvents{}
	p := WithLogging(mock, "mock", events, zerolog.Nop())

	ctx := WithPurpose(context.Background(), "recommend")
	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "weak: Entropy"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.got))
	}
	ev := events.got[0]
	if ev.Purpose != "recommend" || !ev.Success || ev.Provider != "mock" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 7 || ev.OutputTokens != 3 {
		t.Fatalf("unexpected token counts: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[user]\nweak: Entropy") || !strings.Contains(ev.RequestBody, "[system]\nsys") {
		t.Fatalf("unexpected request body %q", ev.RequestBody)
	}
	if ev.ResponseBody != "[]" {
		t.Fatalf("unexpected response body %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderError{Message: "quota exceeded"}})
	events := &recordingEvents{}
	var buf bytes.Buffer
	p := WithLogging(mock, "mock", events, zerolog.New(&buf))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(events.got) != 1 || events.got[0].Success {
		t.Fatalf("expected one failed event, got %+v", events.got)
	}
	if !strings.Contains(events.got[0].ErrorMessage, "quota exceeded") {
		t.Fatalf("unexpected error message %q", events.got[0].ErrorMessage)
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected warn log line, got %s", buf.String())
	}
}

func TestLogging_EventErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`)})
	events := &recordingEvents{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", events, zerolog.Nop())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_NilEventRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`)})
	p := WithLogging(mock, "mock", nil, zerolog.Nop())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
