package entities

// Role is the caller's system-wide tier, resolved by the transport layer.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ClassRole is the caller's contextual role inside one class, looked up from
// the roster. ClassRoleNone is the explicit sentinel for "not enrolled".
type ClassRole string

const (
	ClassRoleNone           ClassRole = ""
	ClassRoleStudent        ClassRole = "STUDENT"
	ClassRoleTeacher        ClassRole = "TEACHER"
	ClassRoleRepresentative ClassRole = "REPRESENTATIVE"
	ClassRoleAdministrator  ClassRole = "ADMINISTRATOR"
	ClassRoleSecretary      ClassRole = "SECRETARY"
)
