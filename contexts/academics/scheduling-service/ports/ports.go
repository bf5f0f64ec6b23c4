package ports

import (
	"context"
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Page is a pagination request. Normalize clamps a negative page to 0 and a
// non-positive size to 1, so repositories never receive a zero-row page.
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

// Predicate is one equality clause compiled from a filter field.
type Predicate struct {
	Field string
	Value any
}

// PeriodFilter narrows period listings. Fields follow the unset convention:
// an id ≤ 0, an empty slot or a zero date contribute no predicate at all,
// so an all-unset filter matches everything.
type PeriodFilter struct {
	TeacherID int64
	RoomID    int64
	ClassID   int64
	Slot      entities.Slot
	Date      time.Time
}

// Predicates compiles the filter to its conjunction of equality clauses.
// Absent fields are omitted rather than compiled to always-true clauses, to
// keep generated queries minimal.
func (f PeriodFilter) Predicates() []Predicate {
	var predicates []Predicate
	if f.TeacherID > 0 {
		predicates = append(predicates, Predicate{Field: "teacher_id", Value: f.TeacherID})
	}
	if f.RoomID > 0 {
		predicates = append(predicates, Predicate{Field: "room_id", Value: f.RoomID})
	}
	if f.ClassID > 0 {
		predicates = append(predicates, Predicate{Field: "class_id", Value: f.ClassID})
	}
	if f.Slot != "" {
		predicates = append(predicates, Predicate{Field: "slot", Value: string(f.Slot)})
	}
	if !f.Date.IsZero() {
		predicates = append(predicates, Predicate{Field: "date", Value: f.Date})
	}
	return predicates
}

// Matches evaluates the compiled conjunction against one period. It is the
// in-memory equivalent of the SQL the postgres adapter generates.
func (f PeriodFilter) Matches(period entities.Period) bool {
	for _, predicate := range f.Predicates() {
		switch predicate.Field {
		case "teacher_id":
			if period.TeacherID != predicate.Value.(int64) {
				return false
			}
		case "room_id":
			if period.RoomID != predicate.Value.(int64) {
				return false
			}
		case "class_id":
			if period.ClassID != predicate.Value.(int64) {
				return false
			}
		case "slot":
			if string(period.Slot) != predicate.Value.(string) {
				return false
			}
		case "date":
			if !period.Date.Equal(predicate.Value.(time.Time)) {
				return false
			}
		}
	}
	return true
}

// PeriodRepository is the period read/write boundary.
type PeriodRepository interface {
	SavePeriod(ctx context.Context, period entities.Period) (entities.Period, error)
	FindPeriodByID(ctx context.Context, periodID int64) (entities.Period, error)
	PeriodExists(ctx context.Context, periodID int64) (bool, error)
	DeletePeriod(ctx context.Context, periodID int64) error
	ListPeriods(ctx context.Context, filter PeriodFilter, page Page) ([]entities.Period, int64, error)
}

// VerificationRepository is the room-verification boundary. SaveVerification
// must enforce the unique constraint on period_id as the backstop for the
// one-verification-per-period rule and surface violations as
// domainerrors.ErrVerificationExists.
type VerificationRepository interface {
	SaveVerification(ctx context.Context, verification entities.RoomVerification) (entities.RoomVerification, error)
	FindVerificationByPeriod(ctx context.Context, periodID int64) (entities.RoomVerification, error)
	VerificationExistsForPeriod(ctx context.Context, periodID int64) (bool, error)
}

// AttendanceRepository is the attendance boundary. SaveAttendance upserts on
// the (period_id, user_id) pair; re-recording presence rewrites the row
// instead of inserting a duplicate.
type AttendanceRepository interface {
	SaveAttendance(ctx context.Context, attendance entities.Attendance) (entities.Attendance, error)
	ListAttendanceByPeriod(ctx context.Context, periodID int64, page Page) ([]entities.Attendance, int64, error)
}

// RosterDirectory resolves registry facts the scheduling use cases need:
// referential existence of the aggregates a period points at, and the
// caller's contextual role in a class. ClassRoleFor returns
// entities.ClassRoleNone when the user has no enrollment in the class.
type RosterDirectory interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	RoomExists(ctx context.Context, roomID int64) (bool, error)
	ClassExists(ctx context.Context, classID int64) (bool, error)
	ClassRoleFor(ctx context.Context, classID int64, userID int64) (entities.ClassRole, error)
}
