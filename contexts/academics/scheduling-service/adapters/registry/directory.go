package registryadapter

import (
	"context"
	"errors"

	registryentities "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	registryerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	registryports "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
)

// Directory implements the scheduling RosterDirectory port on top of the
// registry repositories, translating registry types into scheduling ones so
// the two services stay coupled only through ports.
type Directory struct {
	Users       registryports.UserRepository
	Rooms       registryports.RoomRepository
	Classes     registryports.ClassRepository
	Enrollments registryports.EnrollmentRepository
}

func (d Directory) UserExists(ctx context.Context, userID int64) (bool, error) {
	return d.Users.UserExists(ctx, userID)
}

func (d Directory) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	return d.Rooms.RoomExists(ctx, roomID)
}

func (d Directory) ClassExists(ctx context.Context, classID int64) (bool, error) {
	return d.Classes.ClassExists(ctx, classID)
}

// ClassRoleFor resolves the caller's contextual role in a class. A missing
// enrollment maps to the explicit ClassRoleNone sentinel, not an error.
func (d Directory) ClassRoleFor(ctx context.Context, classID int64, userID int64) (entities.ClassRole, error) {
	enrollment, err := d.Enrollments.FindEnrollment(ctx, registryentities.EnrollmentKey{
		ClassID: classID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, registryerrors.ErrEnrollmentNotFound) {
			return entities.ClassRoleNone, nil
		}
		return entities.ClassRoleNone, err
	}
	return entities.ClassRole(enrollment.Role), nil
}
