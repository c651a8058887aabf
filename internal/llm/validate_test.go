package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-suggestions",
		Description: "A list of study resources",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":  map[string]any{"type": "string", "minLength": 1},
					"type":   map[string]any{"type": "string", "enum": []any{"Video", "Notes", "Quiz"}},
					"source": map[string]any{"type": "string"},
				},
				"required": []any{"title", "type"},
			},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`[{"title":"Carnot Cycle","type":"Video","source":"Khan Academy"}]`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_EmptyArray(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(`[]`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`[{"type":"Notes"}]`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invErr.Content) != string(raw) {
		t.Fatalf("expected raw content on error, got %s", invErr.Content)
	}
}

func TestValidateResponse_WrongShape(t *testing.T) {
	raw := json.RawMessage(`{"title":"Carnot Cycle","type":"Video"}`)
	err := validateResponse(testSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse for an object, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`[{"title":"Entropy","type":"Podcast"}]`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`[{not json}]`)
	err := validateResponse(testSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateJSON_Exported(t *testing.T) {
	if err := ValidateJSON(testSchema(), []byte(`[{"title":"Quiz 1","type":"Quiz"}]`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := ValidateJSON(testSchema(), []byte(`[{"title":""}]`)); err == nil {
		t.Fatal("expected error for empty title and missing type")
	}
}
