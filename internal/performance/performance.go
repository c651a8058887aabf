// Package performance turns test marks into the weak-area analysis shown
// on the dashboard and used to build recommendation profiles.
package performance

import (
	"fmt"
	"math"
	"strings"

	"github.com/teamlowkey/studybuddy/internal/validation"
)

// MaxMarks is the full score of one subject.
const MaxMarks = 100

// Rating is a qualitative band.
type Rating string

const (
	VeryGood         Rating = "Very Good"
	Good             Rating = "Good"
	Average          Rating = "Average"
	NeedsImprovement Rating = "Needs Improvement"
)

// Weak reports whether r flags a weak area.
func (r Rating) Weak() bool {
	return r == Average || r == NeedsImprovement
}

// RateMarks bands a single subject score.
func RateMarks(m int) Rating {
	switch {
	case m > 80:
		return VeryGood
	case m > 60:
		return Good
	case m > 40:
		return Average
	}
	return NeedsImprovement
}

// RateTotal bands the total across subjects.
func RateTotal(total int) Rating {
	switch {
	case total > 230:
		return VeryGood
	case total > 180:
		return Good
	case total > 120:
		return Average
	}
	return NeedsImprovement
}

// SubjectMarks is one subject's score. Topics are the chapters the test
// covered and become weak topics when the subject rates poorly.
type SubjectMarks struct {
	Subject string   `validate:"required"`
	Marks   int      `validate:"min=0,max=100"`
	Topics  []string `validate:"dive,required"`
}

// SubjectRating is a scored subject in a Report.
type SubjectRating struct {
	Subject string
	Marks   int
	Rating  Rating
}

// Report is the analysis of one student's marks.
type Report struct {
	Subjects   []SubjectRating
	Total      int
	Overall    Rating
	Average    float64
	Mastery    int // percent of available marks
	WeakTopics []string
}

type marksSheet struct {
	Marks []SubjectMarks `validate:"dive"`
}

// Analyze scores marks in the given order. Empty input yields an empty
// report rated NeedsImprovement.
func Analyze(marks []SubjectMarks) (Report, error) {
	if err := validation.Struct(marksSheet{Marks: marks}); err != nil {
		return Report{}, fmt.Errorf("analyze marks: %w", err)
	}

	r := Report{Subjects: make([]SubjectRating, 0, len(marks))}
	var weak []string
	for _, m := range marks {
		rating := RateMarks(m.Marks)
		r.Subjects = append(r.Subjects, SubjectRating{Subject: m.Subject, Marks: m.Marks, Rating: rating})
		r.Total += m.Marks

		if !rating.Weak() {
			continue
		}
		if len(m.Topics) == 0 {
			weak = append(weak, m.Subject)
		} else {
			weak = append(weak, m.Topics...)
		}
	}

	r.Overall = RateTotal(r.Total)
	r.WeakTopics = dedupe(weak)
	if n := len(marks); n > 0 {
		r.Average = float64(r.Total) / float64(n)
		r.Mastery = int(math.Round(float64(r.Total) * 100 / float64(n*MaxMarks)))
	}
	return r, nil
}

// Question is one graded question of a test.
type Question struct {
	ID      int
	Text    string
	Topic   string
	Correct bool
}

// Test is a graded test with its question breakdown.
type Test struct {
	Subject   string
	Title     string
	Date      string
	Score     string
	Grade     string
	Questions []Question
}

// Mistakes returns the incorrectly answered questions in order.
func (t Test) Mistakes() []Question {
	var out []Question
	for _, q := range t.Questions {
		if !q.Correct {
			out = append(out, q)
		}
	}
	return out
}

// WeakTopics returns the topics of missed questions, first occurrence
// order, without duplicates.
func (t Test) WeakTopics() []string {
	var topics []string
	for _, q := range t.Mistakes() {
		topics = append(topics, q.Topic)
	}
	return dedupe(topics)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
