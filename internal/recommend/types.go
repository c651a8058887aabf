package recommend

import (
	"encoding/json"
	"strings"
)

// ResourceType classifies a suggestion.
type ResourceType string

const (
	TypeVideo    ResourceType = "Video"
	TypeNotes    ResourceType = "Notes"
	TypeQuiz     ResourceType = "Quiz"
	TypeResource ResourceType = "Resource"

	// TypeError marks the placeholder entry shown when nothing else is
	// available. Parsed responses never produce it.
	TypeError ResourceType = "Error"
)

var knownTypes = []ResourceType{TypeVideo, TypeNotes, TypeQuiz, TypeResource}

// ParseResourceType matches s case-insensitively against the known types.
// Anything unrecognised is a generic Resource.
func ParseResourceType(s string) ResourceType {
	s = strings.TrimSpace(s)
	for _, t := range knownTypes {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return TypeResource
}

// Suggestion is one recommended study resource.
type Suggestion struct {
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	Source      string       `json:"source,omitempty"`
	Description string       `json:"description,omitempty"`
}

// UnmarshalJSON accepts both "desc" and "description"; "description"
// wins when both are present.
func (s *Suggestion) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title       string  `json:"title"`
		Type        string  `json:"type"`
		Source      *string `json:"source"`
		Desc        *string `json:"desc"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = Suggestion{
		Title: strings.TrimSpace(raw.Title),
		Type:  ParseResourceType(raw.Type),
	}
	if raw.Source != nil {
		s.Source = strings.TrimSpace(*raw.Source)
	}
	switch {
	case raw.Description != nil && strings.TrimSpace(*raw.Description) != "":
		s.Description = strings.TrimSpace(*raw.Description)
	case raw.Desc != nil:
		s.Description = strings.TrimSpace(*raw.Desc)
	}
	return nil
}

// Profile is the learner a fetch is made for.
type Profile struct {
	Name       string
	Class      string
	Stream     string
	WeakTopics []string
}
