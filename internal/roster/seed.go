package roster

import "github.com/teamlowkey/studybuddy/internal/performance"

// Seed builds the demo organization: one educator, two students and one
// open join request.
func Seed() *Roster {
	r := New(Org{ID: "LS01", Name: "IIIT_Sri_City", Owner: "Laxmi"})

	demo := performance.Demo()
	must(r.AddMember(JoinRequest{Name: "Narayan", Role: RoleEducator, Stream: "PCM", Subject: "Physics"}))
	krish := must(r.AddMember(JoinRequest{Name: demo.Name, Role: RoleStudent, Class: demo.Class, Stream: demo.Stream}))
	shree := must(r.AddMember(JoinRequest{Name: "Shree", Role: RoleStudent, Class: "12", Stream: "PCM"}))

	mustDo(r.SetMarks(krish.ID, demo.Marks...))
	for _, t := range demo.Tests {
		mustDo(r.RecordTest(krish.ID, t))
	}
	mustDo(r.SetMarks(shree.ID,
		performance.SubjectMarks{Subject: "Mathematics", Marks: 90},
		performance.SubjectMarks{Subject: "Physics", Marks: 86},
		performance.SubjectMarks{Subject: "Chemistry", Marks: 88},
	))

	must(r.RequestJoin(JoinRequest{Name: "Meera", Role: RoleStudent, Class: "11", Stream: "PCB"}))
	return r
}

func must[T any](v T, err error) T {
	mustDo(err)
	return v
}

func mustDo(err error) {
	if err != nil {
		panic("roster seed: " + err.Error())
	}
}
