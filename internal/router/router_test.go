package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/teamlowkey/studybuddy/internal/screen"
)

// fakeScreen records Init and the messages it receives. Setting editing
// makes it report a focused text field.
type fakeScreen struct {
	title   string
	editing bool
	inits   int
	got     []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }
func (s *fakeScreen) CapturingInput() bool { return s.editing }

func titles(r *Router) []string {
	out := make([]string, len(r.stack))
	for i, s := range r.stack {
		out[i] = s.Title()
	}
	return out
}

func sameTitles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs func(next *fakeScreen) []tea.Msg
		want []string
	}{
		{
			name: "push",
			msgs: func(next *fakeScreen) []tea.Msg { return []tea.Msg{PushScreenMsg{Screen: next}} },
			want: []string{"Login", "Dashboard"},
		},
		{
			name: "push then pop",
			msgs: func(next *fakeScreen) []tea.Msg {
				return []tea.Msg{PushScreenMsg{Screen: next}, PopScreenMsg{}}
			},
			want: []string{"Login"},
		},
		{
			name: "pop at bottom",
			msgs: func(*fakeScreen) []tea.Msg { return []tea.Msg{PopScreenMsg{}, PopScreenMsg{}} },
			want: []string{"Login"},
		},
		{
			name: "replace",
			msgs: func(next *fakeScreen) []tea.Msg { return []tea.Msg{ReplaceScreenMsg{Screen: next}} },
			want: []string{"Dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{title: "Login"})
			next := &fakeScreen{title: "Dashboard"}
			for _, msg := range tt.msgs(next) {
				r.Update(msg)
			}
			if got := titles(r); !sameTitles(got, tt.want) {
				t.Errorf("stack = %v, want %v", got, tt.want)
			}
			if r.Active().Title() == "Dashboard" && next.inits != 1 {
				t.Errorf("expected Init once on the new screen, got %d", next.inits)
			}
		})
	}
}

func TestReplaceKeepsScreensBelow(t *testing.T) {
	r := New(&fakeScreen{title: "Dashboard"})
	r.Push(&fakeScreen{title: "Analysis"})
	r.Replace(&fakeScreen{title: "Members"})

	if got := titles(r); !sameTitles(got, []string{"Dashboard", "Members"}) {
		t.Errorf("unexpected stack %v", got)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	bottom := &fakeScreen{title: "Dashboard"}
	top := &fakeScreen{title: "Analysis"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if len(top.got) != 1 {
		t.Errorf("expected active screen to get the key, got %d msgs", len(top.got))
	}
	if len(bottom.got) != 0 {
		t.Error("screens below the top must not get messages")
	}
}

func TestBack(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		editing  bool
		wantBack bool
	}{
		{"pops pushed screen", 2, false, true},
		{"stays at bottom", 1, false, false},
		{"ignored while typing", 2, true, false},
		{"ignored while typing at bottom", 1, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{title: "Dashboard"})
			top := r.Active().(*fakeScreen)
			if tt.depth == 2 {
				top = &fakeScreen{title: "Analysis"}
				r.Push(top)
			}
			top.editing = tt.editing

			if r.Capturing() != tt.editing {
				t.Errorf("Capturing() = %v, want %v", r.Capturing(), tt.editing)
			}

			cmd, ok := r.Back()
			if ok != tt.wantBack {
				t.Fatalf("Back() = %v, want %v", ok, tt.wantBack)
			}
			if !ok {
				if cmd != nil {
					t.Error("expected no command when esc does not go back")
				}
				return
			}

			r.Update(cmd())
			if r.Depth() != 1 || r.Active().Title() != "Dashboard" {
				t.Errorf("expected to land on Dashboard, got %v", titles(r))
			}
		})
	}
}

func TestBackAfterEditingEnds(t *testing.T) {
	r := New(&fakeScreen{title: "Login"})
	signup := &fakeScreen{title: "Sign up", editing: true}
	r.Push(signup)

	if _, ok := r.Back(); ok {
		t.Fatal("esc must stay with the focused field")
	}

	signup.editing = false
	cmd, ok := r.Back()
	if !ok {
		t.Fatal("expected esc to go back once the field is blurred")
	}
	r.Update(cmd())
	if r.Active().Title() != "Login" {
		t.Errorf("expected Login, got %q", r.Active().Title())
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&fakeScreen{title: "Welcome"})
	r.Push(&fakeScreen{title: "Login"})

	if got := r.View(80, 24); got != "Login" {
		t.Errorf("View() = %q, want Login", got)
	}
}
