// Package roster keeps an organization's members and join requests in
// memory.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/validation"
)

// ErrNotFound is returned for unknown member or request IDs.
var ErrNotFound = errors.New("roster: not found")

// Role is a member's role in the organization.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
	RoleOwner    Role = "owner"
)

// ParseRole accepts a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStudent, RoleEducator, RoleOwner:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Title() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleEducator:
		return "Educator"
	case RoleOwner:
		return "Owner"
	}
	return string(r)
}

// Org is the organization the roster belongs to.
type Org struct {
	ID    string
	Name  string
	Owner string
}

// JoinRequest is the sign-up form.
type JoinRequest struct {
	Name    string `validate:"required,min=2,max=64"`
	Email   string `validate:"omitempty,email"`
	Role    Role   `validate:"required,oneof=student educator"`
	Class   string `validate:"omitempty,max=8"`
	Stream  string `validate:"omitempty,max=32"`
	Subject string `validate:"required_if=Role educator,max=32"`
}

// Pending is a join request awaiting the owner's decision.
type Pending struct {
	ID          uuid.UUID
	RequestedAt time.Time
	JoinRequest
}

// Member is an accepted member.
type Member struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     Role
	Class    string
	Stream   string
	Subject  string
	JoinedAt time.Time
	Marks    []performance.SubjectMarks
	Tests    []performance.Test
}

// Student converts a student member for analysis.
func (m Member) Student(org Org) performance.Student {
	return performance.Student{
		Name:   m.Name,
		Class:  m.Class,
		Stream: m.Stream,
		Org:    org.Name,
		Marks:  slices.Clone(m.Marks),
		Tests:  slices.Clone(m.Tests),
	}
}

// Roster is safe for concurrent use.
type Roster struct {
	mu      sync.Mutex
	org     Org
	members []Member
	pending []Pending
	now     func() time.Time
}

func New(org Org) *Roster {
	return &Roster{org: org, now: time.Now}
}

func (r *Roster) Org() Org {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.org
}

// RequestJoin validates req and queues it for the owner.
func (r *Roster) RequestJoin(req JoinRequest) (Pending, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return Pending{}, err
	}

	p := Pending{ID: uuid.New(), RequestedAt: r.now(), JoinRequest: req}
	r.mu.Lock()
	r.pending = append(r.pending, p)
	r.mu.Unlock()
	return p, nil
}

// AddMember adds a member directly, skipping the request queue.
func (r *Roster) AddMember(req JoinRequest) (Member, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return Member{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.admit(req), nil
}

// Accept moves a pending request into the member list.
func (r *Roster) Accept(id uuid.UUID) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.pendingIndex(id)
	if i < 0 {
		return Member{}, fmt.Errorf("accept request %s: %w", id, ErrNotFound)
	}
	p := r.pending[i]
	r.pending = slices.Delete(r.pending, i, i+1)
	return r.admit(p.JoinRequest), nil
}

// Reject drops a pending request.
func (r *Roster) Reject(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.pendingIndex(id)
	if i < 0 {
		return fmt.Errorf("reject request %s: %w", id, ErrNotFound)
	}
	r.pending = slices.Delete(r.pending, i, i+1)
	return nil
}

// AcceptAll accepts every pending request in arrival order.
func (r *Roster) AcceptAll() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := make([]Member, 0, len(r.pending))
	for _, p := range r.pending {
		added = append(added, r.admit(p.JoinRequest))
	}
	r.pending = nil
	return added
}

// RejectAll drops every pending request and returns how many there were.
func (r *Roster) RejectAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.pending)
	r.pending = nil
	return n
}

// SetMarks records a student's subject marks, replacing earlier ones for
// the same subjects.
func (r *Roster) SetMarks(id uuid.UUID, marks ...performance.SubjectMarks) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.members, func(m Member) bool { return m.ID == id })
	if i < 0 {
		return fmt.Errorf("set marks for %s: %w", id, ErrNotFound)
	}
	if _, err := performance.Analyze(marks); err != nil {
		return err
	}

	m := &r.members[i]
	for _, mk := range marks {
		j := slices.IndexFunc(m.Marks, func(x performance.SubjectMarks) bool { return x.Subject == mk.Subject })
		if j >= 0 {
			m.Marks[j] = mk
		} else {
			m.Marks = append(m.Marks, mk)
		}
	}
	return nil
}

// RecordTest attaches a graded test to a member.
func (r *Roster) RecordTest(id uuid.UUID, t performance.Test) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.members, func(m Member) bool { return m.ID == id })
	if i < 0 {
		return fmt.Errorf("record test for %s: %w", id, ErrNotFound)
	}
	r.members[i].Tests = append(r.members[i].Tests, t)
	return nil
}

// Members returns all members in join order.
func (r *Roster) Members() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.members)
}

// Pending returns the open requests in arrival order.
func (r *Roster) Pending() []Pending {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.pending)
}

// Students returns the student members.
func (r *Roster) Students() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Member
	for _, m := range r.members {
		if m.Role == RoleStudent {
			out = append(out, m)
		}
	}
	return out
}

// FindMember looks a member up by name, case-insensitively.
func (r *Roster) FindMember(name string) (Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return Member{}, false
}

// admit must be called with mu held.
func (r *Roster) admit(req JoinRequest) Member {
	m := Member{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Class:    req.Class,
		Stream:   req.Stream,
		Subject:  req.Subject,
		JoinedAt: r.now(),
	}
	r.members = append(r.members, m)
	return m
}

func (r *Roster) pendingIndex(id uuid.UUID) int {
	return slices.IndexFunc(r.pending, func(p Pending) bool { return p.ID == id })
}
