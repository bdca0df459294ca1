package models

// Student is the read-only projection of a student record that issuance
// needs. Students are owned by the student management collaborator.
type Student struct {
	ID             string
	FullName       string
	NationalID     string
	AcademicStatus string
	CourseName     string
}
