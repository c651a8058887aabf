package analysis

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/teamlowkey/studybuddy/internal/performance"
)

func TestView_DemoStudent(t *testing.T) {
	a := New(performance.Demo())
	view := a.View(140, 40)

	for _, want := range []string{
		"Physics", "Average", "Total: 215", "Heat Engines",
		"Unit Test: Thermodynamics", "Missed: Q3, Q4, Q7",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestView_NoMarks(t *testing.T) {
	a := New(performance.Student{Name: "New"})
	view := a.View(120, 40)
	if !strings.Contains(view, "Marks not uploaded yet") {
		t.Error("expected empty marks hint")
	}
	if !strings.Contains(view, "No graded tests yet") {
		t.Error("expected empty tests hint")
	}
}

func TestSwitchTests(t *testing.T) {
	s := performance.Demo()
	second := s.Tests[0]
	second.Title = "Unit Test: Optics"
	s.Tests = append(s.Tests, second)

	a := New(s)
	a.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !strings.Contains(a.View(140, 40), "Unit Test: Optics") {
		t.Error("expected right arrow to show the second test")
	}
	a.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if a.test != 0 {
		t.Errorf("expected wrap to first test, got %d", a.test)
	}
	if len(a.KeyHints()) != 2 {
		t.Error("expected test switch hint")
	}
}
