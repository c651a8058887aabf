// Package members renders the organization roster for owners and
// educators.
package members

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/roster"
	"github.com/teamlowkey/studybuddy/internal/screen"
	"github.com/teamlowkey/studybuddy/internal/ui/layout"
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

// MembersScreen lists members and, for owners, pending join requests.
type MembersScreen struct {
	roster *roster.Roster
	viewer roster.Member
	cursor int
	flash  string
}

var (
	_ screen.Screen          = (*MembersScreen)(nil)
	_ screen.KeyHintProvider = (*MembersScreen)(nil)
	_ screen.UserLabeler     = (*MembersScreen)(nil)
)

// New creates the roster screen for viewer. Owners can act on requests;
// everyone else gets a read-only view.
func New(r *roster.Roster, viewer roster.Member) *MembersScreen {
	return &MembersScreen{roster: r, viewer: viewer}
}

func (m *MembersScreen) Init() tea.Cmd { return nil }

func (m *MembersScreen) Title() string {
	if m.owner() {
		return "Creator Dashboard"
	}
	return "Educator Dashboard"
}

func (m *MembersScreen) UserLabel() string {
	org := m.roster.Org()
	return fmt.Sprintf("%s (%s) · %s", m.viewer.Name, m.viewer.Role.Title(), org.ID)
}

func (m *MembersScreen) owner() bool { return m.viewer.Role == roster.RoleOwner }

func (m *MembersScreen) KeyHints() []layout.KeyHint {
	if !m.owner() {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "a", Description: "Accept"},
		{Key: "d", Description: "Reject"},
		{Key: "y", Description: "Accept all"},
		{Key: "x", Description: "Reject all"},
	}
}

func (m *MembersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.owner() {
		return m, nil
	}

	pending := m.roster.Pending()
	switch k.String() {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, max(len(pending)-1, 0))
	case "a":
		if m.cursor < len(pending) {
			p := pending[m.cursor]
			if _, err := m.roster.Accept(p.ID); err != nil {
				m.flash = err.Error()
			} else {
				m.flash = fmt.Sprintf("%s has been added to the organisation.", p.Name)
			}
		}
	case "d":
		if m.cursor < len(pending) {
			p := pending[m.cursor]
			if err := m.roster.Reject(p.ID); err != nil {
				m.flash = err.Error()
			} else {
				m.flash = fmt.Sprintf("Request from %s rejected.", p.Name)
			}
		}
	case "y":
		if added := m.roster.AcceptAll(); len(added) > 0 {
			m.flash = fmt.Sprintf("Added %d new members.", len(added))
		}
	case "x":
		if n := m.roster.RejectAll(); n > 0 {
			m.flash = fmt.Sprintf("Rejected %d requests.", n)
		}
	}

	if n := len(m.roster.Pending()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m, nil
}

func (m *MembersScreen) View(width, height int) string {
	if !m.owner() {
		return m.viewStudents(width)
	}

	half := (width - 1) / 2
	left := m.viewPending(half)
	if m.flash != "" {
		left += "\n" + theme.Correct.Render(m.flash)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.viewMembers(width-half-1))
}

func (m *MembersScreen) viewPending(width int) string {
	pending := m.roster.Pending()
	title := fmt.Sprintf("Joining Requests (%d)", len(pending))
	if len(pending) == 0 {
		return layout.Section(title, theme.Hint.Render("No pending requests."), width)
	}

	var b strings.Builder
	for i, p := range pending {
		line := fmt.Sprintf("%s · %s", p.Name, p.Role.Title())
		if p.Stream != "" {
			line += " · " + p.Stream
		}
		if p.Subject != "" {
			line += " · " + p.Subject
		}
		if i == m.cursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return layout.Section(title, strings.TrimRight(b.String(), "\n"), width)
}

func (m *MembersScreen) viewMembers(width int) string {
	members := m.roster.Members()
	if len(members) == 0 {
		return layout.Section("Organization Members", theme.Hint.Render("No members yet."), width)
	}

	var b strings.Builder
	for _, mem := range members {
		detail := mem.Stream
		if mem.Subject != "" {
			detail = strings.TrimSpace(detail + " " + mem.Subject)
		}
		fmt.Fprintf(&b, "%-12s %-9s %s\n", mem.Name, mem.Role.Title(), theme.Subtitle.Render(detail))
	}
	return layout.Section("Organization Members", strings.TrimRight(b.String(), "\n"), width)
}

func (m *MembersScreen) viewStudents(width int) string {
	org := m.roster.Org()
	students := m.roster.Students()
	if len(students) == 0 {
		return layout.Section("Class Performance", theme.Hint.Render("No students yet."), width)
	}

	var b strings.Builder
	for _, s := range students {
		st := s.Student(org)
		rep, err := performance.Analyze(st.Marks)
		if err != nil || len(rep.Subjects) == 0 {
			fmt.Fprintf(&b, "%-12s %s\n", s.Name, theme.Hint.Render("marks not uploaded"))
			continue
		}

		note := "Consistent"
		if weak := st.WeakTopics(); len(weak) > 0 {
			note = "Needs help in " + strings.Join(weak, ", ")
		}
		fmt.Fprintf(&b, "%-12s %-8s Avg: %5.1f%%  %s\n",
			s.Name,
			strings.TrimSpace(s.Class+" "+s.Stream),
			rep.Average,
			theme.Subtitle.Render(note),
		)
	}
	return layout.Section("Class Performance", strings.TrimRight(b.String(), "\n"), width)
}
