package models

// Role defines what a logged-in user may do
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// Gender of a student record
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is an accepted gender value
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}
