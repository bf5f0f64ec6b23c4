package entities

import "time"

// ClassRole is the contextual role a user holds inside one class. It is
// independent of the account's global Role.
type ClassRole string

const (
	ClassRoleStudent        ClassRole = "STUDENT"
	ClassRoleTeacher        ClassRole = "TEACHER"
	ClassRoleRepresentative ClassRole = "REPRESENTATIVE"
	ClassRoleAdministrator  ClassRole = "ADMINISTRATOR"
	ClassRoleSecretary      ClassRole = "SECRETARY"
)

// ValidClassRole reports whether r is one of the enumerated class roles.
func ValidClassRole(r ClassRole) bool {
	switch r {
	case ClassRoleStudent, ClassRoleTeacher, ClassRoleRepresentative,
		ClassRoleAdministrator, ClassRoleSecretary:
		return true
	}
	return false
}

// EnrollmentKey is the composite identity of an enrollment. The pair is
// unique: one user holds at most one class role per class.
type EnrollmentKey struct {
	ClassID int64 `json:"class_id"`
	UserID  int64 `json:"user_id"`
}

// Enrollment links a user to a class with a contextual role.
type Enrollment struct {
	Key       EnrollmentKey `json:"key"`
	Role      ClassRole     `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}
