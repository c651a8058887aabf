package login

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/teamlowkey/studybuddy/internal/roster"
	"github.com/teamlowkey/studybuddy/internal/router"
	"github.com/teamlowkey/studybuddy/internal/screen"
)

type stubScreen struct{ who roster.Member }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.who.Name }
func (s *stubScreen) Title() string                           { return string(s.who.Role) }

func stubRoutes() Routes {
	to := func(m roster.Member) screen.Screen { return &stubScreen{who: m} }
	return Routes{Student: to, Educator: to, Owner: to}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func press(l *LoginScreen, code rune) tea.Cmd {
	_, cmd := l.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// run executes cmd and feeds its message back to l. Navigation messages
// are returned instead.
func run(l *LoginScreen, cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); ok {
		return msg
	}
	l.Update(msg)
	return nil
}

func typeText(l *LoginScreen, s string) {
	for _, r := range s {
		l.Update(key(r))
	}
}

func TestStudentLogin(t *testing.T) {
	r := roster.Seed()
	l := New(r, stubRoutes())

	run(l, press(l, tea.KeyEnter))
	if l.step != stepName || l.role != roster.RoleStudent {
		t.Fatalf("expected name step for student, got step %d role %q", l.step, l.role)
	}
	if l.name.Value() != "Krish" {
		t.Fatalf("expected demo name prefilled, got %q", l.name.Value())
	}
	if !l.CapturingInput() {
		t.Error("expected input capture on the name step")
	}

	msg := run(l, press(l, tea.KeyEnter))
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen.View(0, 0) != "Krish" {
		t.Errorf("expected Krish's screen, got %q", replace.Screen.View(0, 0))
	}
}

func TestUnknownNameShowsError(t *testing.T) {
	l := New(roster.Seed(), stubRoutes())
	run(l, press(l, tea.KeyEnter))

	l.name.SetValue("Nobody")
	if cmd := press(l, tea.KeyEnter); cmd != nil {
		t.Fatal("expected no navigation for unknown student")
	}
	if !strings.Contains(l.name.Err, "no student named Nobody") {
		t.Errorf("unexpected error %q", l.name.Err)
	}

	press(l, tea.KeyEscape)
	if l.step != stepRole {
		t.Error("expected esc to return to role menu")
	}
}

func TestOwnerLogin(t *testing.T) {
	l := New(roster.Seed(), stubRoutes())
	press(l, tea.KeyDown)
	press(l, tea.KeyDown)
	run(l, press(l, tea.KeyEnter))
	if l.role != roster.RoleOwner || l.name.Value() != "Laxmi" {
		t.Fatalf("expected owner step with Laxmi, got %q %q", l.role, l.name.Value())
	}

	msg := run(l, press(l, tea.KeyEnter))
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok || replace.Screen.Title() != "owner" {
		t.Fatalf("expected owner screen, got %#v", msg)
	}
}

func TestSignup(t *testing.T) {
	r := roster.Seed()
	l := New(r, stubRoutes())
	for range 3 {
		press(l, tea.KeyDown)
	}
	run(l, press(l, tea.KeyEnter))
	if l.step != stepSignup {
		t.Fatalf("expected sign-up step, got %d", l.step)
	}

	// Submitting an empty form flags the role first.
	press(l, tea.KeyEnter)
	if l.form[fieldRole].Err == "" {
		t.Fatal("expected role error")
	}

	typeText(l, "A")
	press(l, tea.KeyTab)
	typeText(l, "bad-email")
	press(l, tea.KeyTab)
	typeText(l, "educator")
	press(l, tea.KeyEnter)

	if got := l.form[fieldName].Err; got != "at least 2 characters" {
		t.Errorf("unexpected name error %q", got)
	}
	if got := l.form[fieldEmail].Err; got != "not a valid email address" {
		t.Errorf("unexpected email error %q", got)
	}
	if got := l.form[fieldSubject].Err; got != "required" {
		t.Errorf("unexpected subject error %q", got)
	}
	if len(r.Pending()) != 1 {
		t.Fatal("invalid form must not create a request")
	}

	l.form[fieldName].SetValue("Anita")
	l.form[fieldEmail].SetValue("anita@example.com")
	l.form[fieldSubject].SetValue("Chemistry")
	press(l, tea.KeyEnter)

	if l.step != stepRole {
		t.Fatalf("expected return to menu after sign-up, got %d", l.step)
	}
	pending := r.Pending()
	if len(pending) != 2 || pending[1].Name != "Anita" || pending[1].Role != roster.RoleEducator {
		t.Fatalf("unexpected pending requests %+v", pending)
	}
	if !strings.Contains(l.View(100, 30), "Request sent") {
		t.Error("expected confirmation in view")
	}
}
