package performance

import "github.com/teamlowkey/studybuddy/internal/recommend"

// Student is a learner with their recorded results.
type Student struct {
	Name   string
	Class  string
	Stream string
	Org    string
	Marks  []SubjectMarks
	Tests  []Test
}

// WeakTopics combines weak topics from subject marks and from missed test
// questions, marks first.
func (s Student) WeakTopics() []string {
	var topics []string
	if r, err := Analyze(s.Marks); err == nil {
		topics = append(topics, r.WeakTopics...)
	}
	for _, t := range s.Tests {
		topics = append(topics, t.WeakTopics()...)
	}
	return dedupe(topics)
}

// Profile returns the recommendation profile for s.
func (s Student) Profile() recommend.Profile {
	return recommend.Profile{
		Name:       s.Name,
		Class:      s.Class,
		Stream:     s.Stream,
		WeakTopics: s.WeakTopics(),
	}
}

// Demo is the sample student the dashboard opens with.
func Demo() Student {
	return Student{
		Name:   "Krish",
		Class:  "12",
		Stream: "PCM",
		Org:    "IIIT_Sri_City",
		Marks: []SubjectMarks{
			{Subject: "Mathematics", Marks: 92},
			{Subject: "Physics", Marks: 55, Topics: []string{"Thermodynamics", "Entropy"}},
			{Subject: "Chemistry", Marks: 68},
		},
		Tests: []Test{{
			Subject: "Physics",
			Title:   "Unit Test: Thermodynamics & Thermal Properties",
			Date:    "Oct 12, 2023",
			Score:   "35/50",
			Grade:   "B",
			Questions: []Question{
				{ID: 1, Text: "Zeroth Law definition", Topic: "Thermodynamics Basics", Correct: true},
				{ID: 2, Text: "Work done in Isobaric process", Topic: "Thermodynamic Processes", Correct: true},
				{ID: 3, Text: "Efficiency of Carnot Engine calculation", Topic: "Heat Engines"},
				{ID: 4, Text: "Entropy change in reversible process", Topic: "Entropy"},
				{ID: 5, Text: "First Law application", Topic: "Thermodynamics Basics", Correct: true},
				{ID: 6, Text: "Cp - Cv relation", Topic: "Specific Heat", Correct: true},
				{ID: 7, Text: "Adiabatic expansion formula", Topic: "Thermodynamic Processes"},
			},
		}},
	}
}
