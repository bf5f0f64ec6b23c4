package ports

import (
	"context"
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Page is a normalized pagination request. Use Normalize before handing the
// value to a repository: a negative page clamps to 0 and a non-positive size
// clamps to 1 so the storage layer never sees a zero-row page.
type Page struct {
	Number int
	Size   int
}

// Normalize returns a copy with defensive clamping applied.
func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = 1
	}
	return p
}

// Offset is the row offset implied by the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// UserRepository is the account read/write boundary. Accounts are created by
// the external registration flow; SaveUser covers both that seed path and
// profile edits. Users are never hard-deleted.
type UserRepository interface {
	SaveUser(ctx context.Context, user entities.User) (entities.User, error)
	FindUserByID(ctx context.Context, userID int64) (entities.User, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	ListUsers(ctx context.Context, page Page) ([]entities.User, int64, error)
}

// CourseRepository is the course read/write boundary.
type CourseRepository interface {
	SaveCourse(ctx context.Context, course entities.Course) (entities.Course, error)
	FindCourseByID(ctx context.Context, courseID int64) (entities.Course, error)
	CourseExists(ctx context.Context, courseID int64) (bool, error)
	DeleteCourse(ctx context.Context, courseID int64) error
	ListCourses(ctx context.Context, page Page) ([]entities.Course, int64, error)
}

// ClassRepository is the class read/write boundary. SaveClass must enforce
// the (course_id, number) unique constraint as the final backstop for
// concurrent number assignment and surface violations as
// domainerrors.ErrClassNumberTaken.
type ClassRepository interface {
	SaveClass(ctx context.Context, class entities.Class) (entities.Class, error)
	FindClassByID(ctx context.Context, classID int64) (entities.Class, error)
	ClassExists(ctx context.Context, classID int64) (bool, error)
	// MaxClassNumber returns the highest number assigned in the course so
	// far, 0 when the course has no classes yet. Deleted classes leave gaps
	// that are never refilled.
	MaxClassNumber(ctx context.Context, courseID int64) (int, error)
	DeleteClass(ctx context.Context, classID int64) error
	ListClasses(ctx context.Context, courseID int64, page Page) ([]entities.Class, int64, error)
}

// EnrollmentRepository is the class-membership boundary. SaveEnrollment must
// enforce the (class_id, user_id) unique constraint and surface violations
// as domainerrors.ErrEnrollmentExists.
type EnrollmentRepository interface {
	SaveEnrollment(ctx context.Context, enrollment entities.Enrollment) (entities.Enrollment, error)
	FindEnrollment(ctx context.Context, key entities.EnrollmentKey) (entities.Enrollment, error)
	DeleteEnrollment(ctx context.Context, key entities.EnrollmentKey) error
	ListEnrollmentsByClass(ctx context.Context, classID int64, page Page) ([]entities.Enrollment, int64, error)
}

// RoomRepository is the room read/write boundary. SaveRoom must enforce the
// unique constraint on number and surface violations as
// domainerrors.ErrRoomNumberTaken.
type RoomRepository interface {
	SaveRoom(ctx context.Context, room entities.Room) (entities.Room, error)
	FindRoomByID(ctx context.Context, roomID int64) (entities.Room, error)
	RoomExists(ctx context.Context, roomID int64) (bool, error)
	// RoomNumberExists reports whether another room (excludeRoomID aside)
	// currently holds number. Pass excludeRoomID 0 on create.
	RoomNumberExists(ctx context.Context, number int, excludeRoomID int64) (bool, error)
	DeleteRoom(ctx context.Context, roomID int64) error
	ListRooms(ctx context.Context, page Page) ([]entities.Room, int64, error)
}
