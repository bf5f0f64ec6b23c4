package policies

import (
	"testing"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
)

func TestCanManagePeriods(t *testing.T) {
	if !CanManagePeriods(entities.RoleAdmin) {
		t.Fatal("admin must manage periods")
	}
	if CanManagePeriods(entities.RoleUser) {
		t.Fatal("plain user must not manage periods")
	}
}

func TestTwoTierVerificationRule(t *testing.T) {
	cases := []struct {
		name      string
		role      entities.Role
		classRole entities.ClassRole
		want      bool
	}{
		{"admin with no enrollment", entities.RoleAdmin, entities.ClassRoleNone, true},
		{"admin overrides student role", entities.RoleAdmin, entities.ClassRoleStudent, true},
		{"teacher of the class", entities.RoleUser, entities.ClassRoleTeacher, true},
		{"class representative", entities.RoleUser, entities.ClassRoleRepresentative, true},
		{"class administrator", entities.RoleUser, entities.ClassRoleAdministrator, true},
		{"class secretary", entities.RoleUser, entities.ClassRoleSecretary, true},
		{"plain student", entities.RoleUser, entities.ClassRoleStudent, false},
		{"not enrolled", entities.RoleUser, entities.ClassRoleNone, false},
	}

	for _, tc := range cases {
		if got := CanCreateVerification(tc.role, tc.classRole); got != tc.want {
			t.Fatalf("%s: create = %v, want %v", tc.name, got, tc.want)
		}
		if got := CanUpdateVerification(tc.role, tc.classRole); got != tc.want {
			t.Fatalf("%s: update = %v, want %v", tc.name, got, tc.want)
		}
		if got := CanRecordAttendance(tc.role, tc.classRole); got != tc.want {
			t.Fatalf("%s: attendance = %v, want %v", tc.name, got, tc.want)
		}
	}
}
