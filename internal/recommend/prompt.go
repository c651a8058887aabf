package recommend

import (
	"fmt"
	"strings"
)

// SuggestionCount is how many resources the prompt asks for.
const SuggestionCount = 3

// BuildPrompt renders the request text for p. The model is told to reply
// with a bare JSON array so the reply can be parsed directly.
func BuildPrompt(p Profile) string {
	var b strings.Builder

	b.WriteString("I am a")
	if p.Class != "" {
		fmt.Fprintf(&b, " Class %s", p.Class)
	}
	if p.Stream != "" {
		fmt.Fprintf(&b, " %s", p.Stream)
	}
	b.WriteString(" student. ")

	topics := cleanTopics(p.WeakTopics)
	if len(topics) > 0 {
		fmt.Fprintf(&b, "My weak areas are: %s. ", strings.Join(topics, ", "))
		fmt.Fprintf(&b, "Suggest %d specific, short study resources to improve these areas.\n\n", SuggestionCount)
	} else {
		fmt.Fprintf(&b, "Suggest %d specific, short study resources for general revision.\n\n", SuggestionCount)
	}

	b.WriteString("Respond with only a JSON array. Each element must be an object with these keys:\n")
	b.WriteString(`- "title": the resource name` + "\n")
	b.WriteString(`- "type": one of "Video", "Notes", "Quiz"` + "\n")
	b.WriteString(`- "source": where to find it` + "\n")
	b.WriteString(`- "desc": one sentence on why it helps` + "\n\n")
	b.WriteString("Do not include any prose before or after the array. Do not use Markdown formatting or code fences.")

	return b.String()
}

func cleanTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
