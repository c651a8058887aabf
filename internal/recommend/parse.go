package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/teamlowkey/studybuddy/internal/llm"
)

// suggestionSchema accepts a JSON array of objects carrying at least a
// title and a type. Type is free text and normalized after decoding.
var suggestionSchema = &llm.Schema{
	Name:        "resource-suggestions",
	Description: "Study resources recommended for a learner's weak areas",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string", "minLength": 1},
				"type":        map[string]any{"type": "string"},
				"source":      map[string]any{"type": []any{"string", "null"}},
				"desc":        map[string]any{"type": []any{"string", "null"}},
				"description": map[string]any{"type": []any{"string", "null"}},
			},
			"required": []any{"title", "type"},
		},
	},
}

// StripFences removes Markdown code fences (```json and ```) and
// surrounding whitespace. Applying it twice gives the same result.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Parse decodes generated text into suggestions, preserving order. It
// never panics; every failure is a MalformedResponse error.
func Parse(text string) ([]Suggestion, error) {
	body := StripFences(text)
	if body == "" {
		return nil, malformed("response was empty", nil)
	}

	if err := llm.ValidateJSON(suggestionSchema, []byte(body)); err != nil {
		var inv *llm.ErrInvalidResponse
		if errors.As(err, &inv) {
			return nil, malformed("response was not a list of resources", inv.Err)
		}
		return nil, malformed("response was not a list of resources", err)
	}

	var out []Suggestion
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, malformed("response was not a list of resources", err)
	}
	if out == nil {
		out = []Suggestion{}
	}

	for i, s := range out {
		if s.Title == "" {
			return nil, malformed(fmt.Sprintf("resource %d has no title", i+1), nil)
		}
	}
	return out, nil
}
