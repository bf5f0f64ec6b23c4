package policies

import "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"

// Every predicate here is a pure function of its inputs. The global role is
// the escape hatch and is evaluated first: ADMIN always short-circuits to
// permitted, whatever the contextual role says.

// CanManagePeriods gates period create/edit/delete.
func CanManagePeriods(role entities.Role) bool {
	return role == entities.RoleAdmin
}

// elevated lists the contextual roles allowed to act on a class's room
// reports and attendance. A plain STUDENT, or a caller with no enrollment
// at all (ClassRoleNone), is not elevated.
func elevated(classRole entities.ClassRole) bool {
	switch classRole {
	case entities.ClassRoleTeacher, entities.ClassRoleRepresentative,
		entities.ClassRoleAdministrator, entities.ClassRoleSecretary:
		return true
	}
	return false
}

// CanCreateVerification decides the two-tier room-verification create rule.
func CanCreateVerification(role entities.Role, classRole entities.ClassRole) bool {
	if role == entities.RoleAdmin {
		return true
	}
	return elevated(classRole)
}

// CanUpdateVerification decides the two-tier room-verification update rule.
func CanUpdateVerification(role entities.Role, classRole entities.ClassRole) bool {
	if role == entities.RoleAdmin {
		return true
	}
	return elevated(classRole)
}

// CanRecordAttendance follows the same two-tier rule as verifications.
func CanRecordAttendance(role entities.Role, classRole entities.ClassRole) bool {
	if role == entities.RoleAdmin {
		return true
	}
	return elevated(classRole)
}
