package commands

import (
	"context"
	"errors"
	"testing"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/adapters/memory"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
)

var (
	admin = application.Actor{UserID: 1, Role: entities.RoleAdmin}
	plain = application.Actor{UserID: 2, Role: entities.RoleUser}
)

func seedCourse(t *testing.T, store *memory.Store) entities.Course {
	t.Helper()
	create := CreateCourseUseCase{Courses: store, Policies: policies.Default(), Clock: store}
	course, err := create.Execute(context.Background(), CreateCourseCommand{
		Actor:   admin,
		Name:    "Systems Analysis",
		Acronym: "SA",
	})
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func seedUser(t *testing.T, store *memory.Store) entities.User {
	t.Helper()
	user, err := store.SaveUser(context.Background(), entities.User{
		Name:  "Joana Prado",
		Email: "joana@example.edu",
		Role:  entities.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestCreateCourseDeniedForPlainUser(t *testing.T) {
	store := memory.NewStore()
	create := CreateCourseUseCase{Courses: store, Policies: policies.Default(), Clock: store}

	_, err := create.Execute(context.Background(), CreateCourseCommand{
		Actor:   plain,
		Name:    "Systems Analysis",
		Acronym: "SA",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateCourseRejectsBlankFields(t *testing.T) {
	store := memory.NewStore()
	create := CreateCourseUseCase{Courses: store, Policies: policies.Default(), Clock: store}

	_, err := create.Execute(context.Background(), CreateCourseCommand{
		Actor:   admin,
		Name:    "   ",
		Acronym: "SA",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCourseInput) {
		t.Fatalf("expected invalid course input, got %v", err)
	}
}

func TestClassNumbersAreSequentialPerCourse(t *testing.T) {
	store := memory.NewStore()
	course := seedCourse(t, store)
	other := seedCourse(t, store)
	create := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}

	for want := 1; want <= 3; want++ {
		class, err := create.Execute(context.Background(), CreateClassCommand{
			Actor:      admin,
			CourseID:   course.CourseID,
			TotalHours: 800,
			Shift:      entities.ShiftMorning,
		})
		if err != nil {
			t.Fatalf("create class %d: %v", want, err)
		}
		if class.Key.Number != want {
			t.Fatalf("class number = %d, want %d", class.Key.Number, want)
		}
	}

	// Numbering is scoped to the course, not global.
	class, err := create.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   other.CourseID,
		TotalHours: 800,
		Shift:      entities.ShiftEvening,
	})
	if err != nil {
		t.Fatalf("create class in second course: %v", err)
	}
	if class.Key.Number != 1 {
		t.Fatalf("second course should start at 1, got %d", class.Key.Number)
	}
}

func TestDeletedClassNumberIsNotReused(t *testing.T) {
	store := memory.NewStore()
	course := seedCourse(t, store)
	create := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}
	remove := DeleteClassUseCase{Classes: store, Policies: policies.Default()}

	var classes []entities.Class
	for i := 0; i < 3; i++ {
		class, err := create.Execute(context.Background(), CreateClassCommand{
			Actor:      admin,
			CourseID:   course.CourseID,
			TotalHours: 400,
			Shift:      entities.ShiftAfternoon,
		})
		if err != nil {
			t.Fatalf("create class: %v", err)
		}
		classes = append(classes, class)
	}

	// Deleting number 2 leaves the max at 3, so the next number is 4.
	if err := remove.Execute(context.Background(), DeleteClassCommand{Actor: admin, ClassID: classes[1].ClassID}); err != nil {
		t.Fatalf("delete class: %v", err)
	}
	next, err := create.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   course.CourseID,
		TotalHours: 400,
		Shift:      entities.ShiftAfternoon,
	})
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if next.Key.Number != 4 {
		t.Fatalf("class number after gap = %d, want 4", next.Key.Number)
	}
}

func TestCreateClassUnknownCourse(t *testing.T) {
	store := memory.NewStore()
	create := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}

	_, err := create.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   99,
		TotalHours: 100,
		Shift:      entities.ShiftMorning,
	})
	if !errors.Is(err, domainerrors.ErrCourseNotFound) {
		t.Fatalf("expected course not found, got %v", err)
	}
}

func TestCreateClassRejectsInvalidInput(t *testing.T) {
	store := memory.NewStore()
	course := seedCourse(t, store)
	create := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}

	_, err := create.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   course.CourseID,
		TotalHours: entities.MaxTotalHours + 1,
		Shift:      entities.ShiftMorning,
	})
	if !errors.Is(err, domainerrors.ErrInvalidTotalHours) {
		t.Fatalf("expected invalid total hours, got %v", err)
	}

	_, err = create.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   course.CourseID,
		TotalHours: 100,
		Shift:      entities.Shift("NIGHTLY"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidShift) {
		t.Fatalf("expected invalid shift, got %v", err)
	}
}

func TestEnrollUserDuplicatePairConflicts(t *testing.T) {
	store := memory.NewStore()
	course := seedCourse(t, store)
	user := seedUser(t, store)
	createClass := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}
	enroll := EnrollUserUseCase{Enrollments: store, Classes: store, Users: store, Policies: policies.Default(), Clock: store}

	class, err := createClass.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   course.CourseID,
		TotalHours: 100,
		Shift:      entities.ShiftMorning,
	})
	if err != nil {
		t.Fatalf("create class: %v", err)
	}

	_, err = enroll.Execute(context.Background(), EnrollUserCommand{
		Actor:   admin,
		ClassID: class.ClassID,
		UserID:  user.UserID,
		Role:    entities.ClassRoleStudent,
	})
	if err != nil {
		t.Fatalf("first enrollment: %v", err)
	}

	// Second enrollment for the same pair must conflict even with a
	// different contextual role.
	_, err = enroll.Execute(context.Background(), EnrollUserCommand{
		Actor:   admin,
		ClassID: class.ClassID,
		UserID:  user.UserID,
		Role:    entities.ClassRoleRepresentative,
	})
	if !errors.Is(err, domainerrors.ErrEnrollmentExists) {
		t.Fatalf("expected enrollment exists, got %v", err)
	}
}

func TestEnrollUserUnknownReferences(t *testing.T) {
	store := memory.NewStore()
	course := seedCourse(t, store)
	user := seedUser(t, store)
	createClass := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}
	enroll := EnrollUserUseCase{Enrollments: store, Classes: store, Users: store, Policies: policies.Default(), Clock: store}

	class, err := createClass.Execute(context.Background(), CreateClassCommand{
		Actor:      admin,
		CourseID:   course.CourseID,
		TotalHours: 100,
		Shift:      entities.ShiftMorning,
	})
	if err != nil {
		t.Fatalf("create class: %v", err)
	}

	_, err = enroll.Execute(context.Background(), EnrollUserCommand{
		Actor:   admin,
		ClassID: 404,
		UserID:  user.UserID,
		Role:    entities.ClassRoleStudent,
	})
	if !errors.Is(err, domainerrors.ErrClassNotFound) {
		t.Fatalf("expected class not found, got %v", err)
	}

	_, err = enroll.Execute(context.Background(), EnrollUserCommand{
		Actor:   admin,
		ClassID: class.ClassID,
		UserID:  404,
		Role:    entities.ClassRoleStudent,
	})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestUnenrollMissingEnrollment(t *testing.T) {
	store := memory.NewStore()
	unenroll := UnenrollUserUseCase{Enrollments: store, Policies: policies.Default()}

	err := unenroll.Execute(context.Background(), UnenrollUserCommand{Actor: admin, ClassID: 1, UserID: 2})
	if !errors.Is(err, domainerrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected enrollment not found, got %v", err)
	}
}

func TestRoomNumberUniqueAcrossLifecycle(t *testing.T) {
	store := memory.NewStore()
	create := CreateRoomUseCase{Rooms: store, Policies: policies.Default(), Clock: store}
	remove := DeleteRoomUseCase{Rooms: store, Policies: policies.Default()}

	room, err := create.Execute(context.Background(), CreateRoomCommand{
		Actor:  admin,
		Number: 101,
		Type:   entities.RoomTypeClassroom,
	})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	_, err = create.Execute(context.Background(), CreateRoomCommand{
		Actor:  admin,
		Number: 101,
		Type:   entities.RoomTypeLaboratory,
	})
	if !errors.Is(err, domainerrors.ErrRoomNumberTaken) {
		t.Fatalf("expected room number taken, got %v", err)
	}

	// Deletion frees the number for reuse, unlike class numbers.
	if err := remove.Execute(context.Background(), DeleteRoomCommand{Actor: admin, RoomID: room.RoomID}); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	if _, err := create.Execute(context.Background(), CreateRoomCommand{
		Actor:  admin,
		Number: 101,
		Type:   entities.RoomTypeAuditorium,
	}); err != nil {
		t.Fatalf("reuse freed number: %v", err)
	}
}

func TestUpdateRoomKeepingOwnNumber(t *testing.T) {
	store := memory.NewStore()
	create := CreateRoomUseCase{Rooms: store, Policies: policies.Default(), Clock: store}
	update := UpdateRoomUseCase{Rooms: store, Policies: policies.Default(), Clock: store}

	room, err := create.Execute(context.Background(), CreateRoomCommand{
		Actor:  admin,
		Number: 200,
		Type:   entities.RoomTypeClassroom,
	})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	// Saving a room under its own number is not a conflict.
	updated, err := update.Execute(context.Background(), UpdateRoomCommand{
		Actor:  admin,
		RoomID: room.RoomID,
		Number: 200,
		Type:   entities.RoomTypeLibrary,
	})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if updated.Type != entities.RoomTypeLibrary {
		t.Fatalf("room type = %s, want LIBRARY", updated.Type)
	}

	other, err := create.Execute(context.Background(), CreateRoomCommand{
		Actor:  admin,
		Number: 201,
		Type:   entities.RoomTypeClassroom,
	})
	if err != nil {
		t.Fatalf("create second room: %v", err)
	}
	_, err = update.Execute(context.Background(), UpdateRoomCommand{
		Actor:  admin,
		RoomID: other.RoomID,
		Number: 200,
		Type:   entities.RoomTypeClassroom,
	})
	if !errors.Is(err, domainerrors.ErrRoomNumberTaken) {
		t.Fatalf("expected room number taken, got %v", err)
	}
}

func TestMutationsDeniedForPlainUser(t *testing.T) {
	store := memory.NewStore()
	course := seedCourse(t, store)

	createClass := CreateClassUseCase{Classes: store, Courses: store, Policies: policies.Default(), Clock: store}
	if _, err := createClass.Execute(context.Background(), CreateClassCommand{
		Actor:      plain,
		CourseID:   course.CourseID,
		TotalHours: 100,
		Shift:      entities.ShiftMorning,
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("class create: expected forbidden, got %v", err)
	}

	createRoom := CreateRoomUseCase{Rooms: store, Policies: policies.Default(), Clock: store}
	if _, err := createRoom.Execute(context.Background(), CreateRoomCommand{
		Actor:  plain,
		Number: 10,
		Type:   entities.RoomTypeClassroom,
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("room create: expected forbidden, got %v", err)
	}

	deleteCourse := DeleteCourseUseCase{Courses: store, Policies: policies.Default()}
	if err := deleteCourse.Execute(context.Background(), DeleteCourseCommand{
		Actor:    plain,
		CourseID: course.CourseID,
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("course delete: expected forbidden, got %v", err)
	}
}
