// Package analysis renders the post-test weak-area breakdown.
package analysis

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/screen"
	"github.com/teamlowkey/studybuddy/internal/ui/layout"
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

// AnalysisScreen shows subject ratings and the latest test breakdown.
type AnalysisScreen struct {
	student performance.Student
	report  performance.Report
	err     error
	test    int
}

var _ screen.Screen = (*AnalysisScreen)(nil)

func New(student performance.Student) *AnalysisScreen {
	report, err := performance.Analyze(student.Marks)
	return &AnalysisScreen{student: student, report: report, err: err}
}

func (a *AnalysisScreen) Init() tea.Cmd { return nil }
func (a *AnalysisScreen) Title() string { return "Performance Analysis" }

func (a *AnalysisScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if len(a.student.Tests) > 1 {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Switch test"})
	}
	return hints
}

func (a *AnalysisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && len(a.student.Tests) > 0 {
		switch k.String() {
		case "left", "h":
			a.test = (a.test + len(a.student.Tests) - 1) % len(a.student.Tests)
		case "right", "l":
			a.test = (a.test + 1) % len(a.student.Tests)
		}
	}
	return a, nil
}

func ratingStyle(r performance.Rating) lipgloss.Style {
	switch r {
	case performance.VeryGood:
		return theme.Correct
	case performance.Good:
		return lipgloss.NewStyle().Foreground(theme.Secondary)
	case performance.Average:
		return lipgloss.NewStyle().Foreground(theme.Warning)
	}
	return theme.Incorrect
}

func (a *AnalysisScreen) View(width, height int) string {
	half := (width - 1) / 2
	left := lipgloss.JoinVertical(lipgloss.Left, a.viewSubjects(half), a.viewWeakAreas(half))
	right := a.viewTest(width - half - 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (a *AnalysisScreen) viewSubjects(width int) string {
	if a.err != nil {
		return layout.Section("Subject-wise Analysis", theme.Incorrect.Render(a.err.Error()), width)
	}
	if len(a.report.Subjects) == 0 {
		return layout.Section("Subject-wise Analysis", theme.Hint.Render("Marks not uploaded yet."), width)
	}

	var b strings.Builder
	for _, s := range a.report.Subjects {
		fmt.Fprintf(&b, "%-14s %3d  %s\n", s.Subject, s.Marks, ratingStyle(s.Rating).Render(string(s.Rating)))
	}
	fmt.Fprintf(&b, "\nTotal: %d   Average: %.2f\n", a.report.Total, a.report.Average)
	b.WriteString("Overall: " + ratingStyle(a.report.Overall).Render(string(a.report.Overall)))
	return layout.Section("Subject-wise Analysis", b.String(), width)
}

func (a *AnalysisScreen) viewWeakAreas(width int) string {
	weak := a.student.WeakTopics()
	if len(weak) == 0 {
		return layout.Section("AI Weak Area Detection", theme.Correct.Render("No weak areas detected in this test! Great job."), width)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
		Render(fmt.Sprintf("%d weak areas detected", len(weak))))
	b.WriteString("\n")
	for _, w := range weak {
		b.WriteString("  • " + w + "\n")
	}
	b.WriteString(theme.Hint.Render("AI resources for these topics are on the dashboard."))
	return layout.Section("AI Weak Area Detection", b.String(), width)
}

func (a *AnalysisScreen) viewTest(width int) string {
	if len(a.student.Tests) == 0 {
		return layout.Section("Test Question Breakdown", theme.Hint.Render("No graded tests yet."), width)
	}
	t := a.student.Tests[a.test]

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(t.Title) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s · Score %s · Grade %s", t.Subject, t.Date, t.Score, t.Grade)))
	b.WriteString("\n\n")
	for _, q := range t.Questions {
		mark := theme.Correct.Render("✓")
		if !q.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		fmt.Fprintf(&b, "%s Q%d. %s\n    %s\n", mark, q.ID, q.Text, theme.Hint.Render(q.Topic))
	}
	if missed := t.Mistakes(); len(missed) > 0 {
		ids := make([]string, len(missed))
		for i, q := range missed {
			ids[i] = fmt.Sprintf("Q%d", q.ID)
		}
		b.WriteString("\n" + theme.Subtitle.Render("Missed: "+strings.Join(ids, ", ")))
	}
	return layout.Section("Test Question Breakdown", b.String(), width)
}
