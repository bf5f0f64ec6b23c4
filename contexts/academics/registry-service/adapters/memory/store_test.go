package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
)

func TestSaveClassEnforcesCourseNumberUniqueness(t *testing.T) {
	store := NewStore()

	key := entities.ClassKey{CourseID: 1, Number: 1}
	if _, err := store.SaveClass(context.Background(), entities.Class{Key: key}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	_, err := store.SaveClass(context.Background(), entities.Class{Key: key})
	if !errors.Is(err, domainerrors.ErrClassNumberTaken) {
		t.Fatalf("expected class number taken, got %v", err)
	}

	// Same number under another course is a different key.
	if _, err := store.SaveClass(context.Background(), entities.Class{
		Key: entities.ClassKey{CourseID: 2, Number: 1},
	}); err != nil {
		t.Fatalf("save under second course: %v", err)
	}
}

func TestSaveClassAllowsRewriteOfSameClass(t *testing.T) {
	store := NewStore()

	class, err := store.SaveClass(context.Background(), entities.Class{
		Key: entities.ClassKey{CourseID: 1, Number: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	class.TotalHours = 900
	if _, err := store.SaveClass(context.Background(), class); err != nil {
		t.Fatalf("rewrite same class: %v", err)
	}
}

func TestSaveRoomEnforcesNumberUniqueness(t *testing.T) {
	store := NewStore()

	room, err := store.SaveRoom(context.Background(), entities.Room{Number: 101, Type: entities.RoomTypeClassroom})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	_, err = store.SaveRoom(context.Background(), entities.Room{Number: 101, Type: entities.RoomTypeLaboratory})
	if !errors.Is(err, domainerrors.ErrRoomNumberTaken) {
		t.Fatalf("expected room number taken, got %v", err)
	}

	// The room itself can be rewritten under its own number.
	room.Type = entities.RoomTypeLibrary
	if _, err := store.SaveRoom(context.Background(), room); err != nil {
		t.Fatalf("rewrite same room: %v", err)
	}
}

func TestSaveEnrollmentRejectsDuplicatePair(t *testing.T) {
	store := NewStore()

	key := entities.EnrollmentKey{ClassID: 1, UserID: 7}
	if _, err := store.SaveEnrollment(context.Background(), entities.Enrollment{Key: key, Role: entities.ClassRoleStudent}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	_, err := store.SaveEnrollment(context.Background(), entities.Enrollment{Key: key, Role: entities.ClassRoleTeacher})
	if !errors.Is(err, domainerrors.ErrEnrollmentExists) {
		t.Fatalf("expected enrollment exists, got %v", err)
	}
}

func TestMaxClassNumberEmptyCourse(t *testing.T) {
	store := NewStore()

	max, err := store.MaxClassNumber(context.Background(), 9)
	if err != nil {
		t.Fatalf("max class number: %v", err)
	}
	if max != 0 {
		t.Fatalf("max = %d, want 0 for empty course", max)
	}
}
