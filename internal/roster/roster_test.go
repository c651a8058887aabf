package roster

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/validation"
)

func newTestRoster() *Roster {
	return New(Org{ID: "T01", Name: "Test Org", Owner: "Owner"})
}

func TestRequestJoin_Validation(t *testing.T) {
	r := newTestRoster()

	tests := []struct {
		name  string
		req   JoinRequest
		field string
	}{
		{"blank name", JoinRequest{Name: "  ", Role: RoleStudent}, "Name"},
		{"bad email", JoinRequest{Name: "Krish", Email: "not-an-email", Role: RoleStudent}, "Email"},
		{"owner role", JoinRequest{Name: "Krish", Role: RoleOwner}, "Role"},
		{"educator without subject", JoinRequest{Name: "Narayan", Role: RoleEducator}, "Subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.RequestJoin(tt.req)
			var ve validation.Errors
			require.ErrorAs(t, err, &ve)
			assert.True(t, ve.Has(tt.field), "expected %s to fail, got %v", tt.field, ve)
		})
	}
	assert.Empty(t, r.Pending())
}

func TestAcceptAndReject(t *testing.T) {
	r := newTestRoster()

	a, err := r.RequestJoin(JoinRequest{Name: "Krish", Email: "krish@example.com", Role: RoleStudent, Class: "12", Stream: "PCM"})
	require.NoError(t, err)
	b, err := r.RequestJoin(JoinRequest{Name: "Narayan", Role: RoleEducator, Subject: "Physics"})
	require.NoError(t, err)
	require.Len(t, r.Pending(), 2)
	assert.NotEqual(t, uuid.Nil, a.ID)

	m, err := r.Accept(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Krish", m.Name)
	assert.Equal(t, RoleStudent, m.Role)
	assert.Equal(t, "PCM", m.Stream)

	require.NoError(t, r.Reject(b.ID))
	assert.Empty(t, r.Pending())
	assert.Len(t, r.Members(), 1)

	_, err = r.Accept(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Reject(uuid.New()), ErrNotFound)
}

func TestAcceptAllRejectAll(t *testing.T) {
	r := newTestRoster()
	for _, name := range []string{"Asha", "Bilal", "Chen"} {
		_, err := r.RequestJoin(JoinRequest{Name: name, Role: RoleStudent})
		require.NoError(t, err)
	}

	added := r.AcceptAll()
	require.Len(t, added, 3)
	assert.Equal(t, "Asha", added[0].Name)
	assert.Equal(t, "Chen", added[2].Name)
	assert.Empty(t, r.Pending())
	assert.Len(t, r.Students(), 3)

	_, err := r.RequestJoin(JoinRequest{Name: "Dev", Role: RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, 1, r.RejectAll())
	assert.Equal(t, 0, r.RejectAll())
	assert.Len(t, r.Members(), 3)
}

func TestSetMarks(t *testing.T) {
	r := newTestRoster()
	m, err := r.AddMember(JoinRequest{Name: "Krish", Role: RoleStudent})
	require.NoError(t, err)

	require.NoError(t, r.SetMarks(m.ID, performance.SubjectMarks{Subject: "Physics", Marks: 40}))
	require.NoError(t, r.SetMarks(m.ID,
		performance.SubjectMarks{Subject: "Physics", Marks: 55},
		performance.SubjectMarks{Subject: "Mathematics", Marks: 92},
	))

	got := r.Students()[0].Marks
	require.Len(t, got, 2)
	assert.Equal(t, 55, got[0].Marks)

	assert.Error(t, r.SetMarks(m.ID, performance.SubjectMarks{Subject: "Physics", Marks: 120}))
	assert.ErrorIs(t, r.SetMarks(uuid.New()), ErrNotFound)
}

func TestMembersReturnsCopy(t *testing.T) {
	r := newTestRoster()
	_, err := r.AddMember(JoinRequest{Name: "Krish", Role: RoleStudent})
	require.NoError(t, err)

	ms := r.Members()
	ms[0].Name = "changed"
	assert.Equal(t, "Krish", r.Members()[0].Name)
}

func TestSeed(t *testing.T) {
	r := Seed()
	assert.Equal(t, "LS01", r.Org().ID)
	assert.Equal(t, "Laxmi", r.Org().Owner)

	students := r.Students()
	require.Len(t, students, 2)
	assert.Equal(t, "Krish", students[0].Name)
	assert.Equal(t, "Shree", students[1].Name)
	require.Len(t, r.Pending(), 1)

	krish, ok := r.FindMember("krish")
	require.True(t, ok)
	s := krish.Student(r.Org())
	assert.Equal(t, performance.Demo().Profile().WeakTopics, s.Profile().WeakTopics)
	assert.Equal(t, "IIIT_Sri_City", s.Org)

	assert.ErrorIs(t, r.RecordTest(uuid.New(), performance.Test{}), ErrNotFound)

	rep, err := performance.Analyze(students[1].Marks)
	require.NoError(t, err)
	assert.InDelta(t, 88, rep.Average, 0.001)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Educator ")
	require.NoError(t, err)
	assert.Equal(t, RoleEducator, r)
	assert.Equal(t, "Educator", r.Title())

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
