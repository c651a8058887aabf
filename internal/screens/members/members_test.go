package members

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/teamlowkey/studybuddy/internal/roster"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func owner(r *roster.Roster) roster.Member {
	return roster.Member{Name: r.Org().Owner, Role: roster.RoleOwner}
}

func TestOwner_AcceptSelected(t *testing.T) {
	r := roster.Seed()
	s := New(r, owner(r))

	if !strings.Contains(s.View(120, 30), "Joining Requests (1)") {
		t.Fatal("expected one pending request")
	}

	s.Update(key('a'))
	if n := len(r.Pending()); n != 0 {
		t.Fatalf("expected request accepted, %d left", n)
	}
	if !strings.Contains(s.View(120, 30), "Meera has been added") {
		t.Error("expected confirmation flash")
	}
	if _, ok := r.FindMember("Meera"); !ok {
		t.Error("expected Meera in members")
	}
}

func TestOwner_RejectAndBulk(t *testing.T) {
	r := roster.Seed()
	for _, name := range []string{"Asha", "Bilal"} {
		if _, err := r.RequestJoin(roster.JoinRequest{Name: name, Role: roster.RoleStudent}); err != nil {
			t.Fatal(err)
		}
	}
	s := New(r, owner(r))

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(key('d'))
	pending := r.Pending()
	if len(pending) != 2 || pending[1].Name != "Bilal" {
		t.Fatalf("expected Asha rejected, got %+v", pending)
	}

	s.Update(key('y'))
	if len(r.Pending()) != 0 {
		t.Fatal("expected all accepted")
	}
	before := len(r.Members())
	s.Update(key('x'))
	if len(r.Members()) != before {
		t.Error("reject all with nothing pending should not change members")
	}
}

func TestEducator_ReadOnly(t *testing.T) {
	r := roster.Seed()
	narayan, ok := r.FindMember("Narayan")
	if !ok {
		t.Fatal("seed educator missing")
	}
	s := New(r, narayan)

	s.Update(key('y'))
	if len(r.Pending()) != 1 {
		t.Fatal("educator must not act on requests")
	}

	view := s.View(140, 30)
	for _, want := range []string{"Krish", "Shree", "Consistent", "Needs help in"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in educator view", want)
		}
	}
	if s.Title() != "Educator Dashboard" {
		t.Errorf("unexpected title %q", s.Title())
	}
}
