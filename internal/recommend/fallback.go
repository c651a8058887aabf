package recommend

var fallback = []Suggestion{
	{
		Title:       "Topic Review Playlist",
		Type:        TypeVideo,
		Source:      "Khan Academy",
		Description: "Short explainer videos covering the fundamentals.",
	},
	{
		Title:       "Formula Summary Sheet",
		Type:        TypeNotes,
		Source:      "StudyBuddy",
		Description: "Key formulas and definitions on a single page.",
	},
	{
		Title:       "Quick Practice Quiz",
		Type:        TypeQuiz,
		Source:      "StudyBuddy",
		Description: "Ten questions to check what stuck.",
	},
}

// Fallback returns the offline suggestion list. Each call returns a new
// slice, so callers may modify it freely.
func Fallback() []Suggestion {
	out := make([]Suggestion, len(fallback))
	copy(out, fallback)
	return out
}
