package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/adapters/memory"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
)

var (
	adminActor = application.Actor{UserID: 1, Role: entities.RoleAdmin}
	userActor  = application.Actor{UserID: 50, Role: entities.RoleUser}
)

// rosterStub backs the RosterDirectory port with fixed registry facts.
type rosterStub struct {
	users   map[int64]bool
	rooms   map[int64]bool
	classes map[int64]bool
	roles   map[int64]map[int64]entities.ClassRole
}

func fullRoster() rosterStub {
	return rosterStub{
		users:   map[int64]bool{1: true, 10: true, 50: true, 60: true},
		rooms:   map[int64]bool{5: true},
		classes: map[int64]bool{3: true},
		roles: map[int64]map[int64]entities.ClassRole{
			3: {
				10: entities.ClassRoleTeacher,
				50: entities.ClassRoleStudent,
				60: entities.ClassRoleRepresentative,
			},
		},
	}
}

func (r rosterStub) UserExists(_ context.Context, userID int64) (bool, error) {
	return r.users[userID], nil
}

func (r rosterStub) RoomExists(_ context.Context, roomID int64) (bool, error) {
	return r.rooms[roomID], nil
}

func (r rosterStub) ClassExists(_ context.Context, classID int64) (bool, error) {
	return r.classes[classID], nil
}

func (r rosterStub) ClassRoleFor(_ context.Context, classID int64, userID int64) (entities.ClassRole, error) {
	return r.roles[classID][userID], nil
}

func seedPeriod(t *testing.T, store *memory.Store) entities.Period {
	t.Helper()
	create := CreatePeriodUseCase{Periods: store, Roster: fullRoster(), Clock: store}
	period, err := create.Execute(context.Background(), CreatePeriodCommand{
		Actor:     adminActor,
		TeacherID: 10,
		RoomID:    5,
		ClassID:   3,
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Slot:      entities.SlotMorning,
	})
	if err != nil {
		t.Fatalf("seed period: %v", err)
	}
	return period
}

func TestCreatePeriodChecksEveryReference(t *testing.T) {
	store := memory.NewStore()
	create := CreatePeriodUseCase{Periods: store, Roster: fullRoster(), Clock: store}
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		cmd  CreatePeriodCommand
		want error
	}{
		{"unknown teacher", CreatePeriodCommand{Actor: adminActor, TeacherID: 99, RoomID: 5, ClassID: 3, Date: date, Slot: entities.SlotMorning}, domainerrors.ErrTeacherNotFound},
		{"unknown room", CreatePeriodCommand{Actor: adminActor, TeacherID: 10, RoomID: 99, ClassID: 3, Date: date, Slot: entities.SlotMorning}, domainerrors.ErrRoomNotFound},
		{"unknown class", CreatePeriodCommand{Actor: adminActor, TeacherID: 10, RoomID: 5, ClassID: 99, Date: date, Slot: entities.SlotMorning}, domainerrors.ErrClassNotFound},
		{"invalid slot", CreatePeriodCommand{Actor: adminActor, TeacherID: 10, RoomID: 5, ClassID: 3, Date: date, Slot: entities.Slot("NIGHT")}, domainerrors.ErrInvalidSlot},
		{"zero date", CreatePeriodCommand{Actor: adminActor, TeacherID: 10, RoomID: 5, ClassID: 3, Slot: entities.SlotMorning}, domainerrors.ErrInvalidPeriodDate},
		{"plain user", CreatePeriodCommand{Actor: userActor, TeacherID: 10, RoomID: 5, ClassID: 3, Date: date, Slot: entities.SlotMorning}, domainerrors.ErrForbidden},
	}

	for _, tc := range cases {
		if _, err := create.Execute(context.Background(), tc.cmd); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	if _, err := create.Execute(context.Background(), CreatePeriodCommand{
		Actor: adminActor, TeacherID: 10, RoomID: 5, ClassID: 3, Date: date, Slot: entities.SlotMorning,
	}); err != nil {
		t.Fatalf("valid create failed: %v", err)
	}
}

func TestUpdatePeriodKeepsClass(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	update := UpdatePeriodUseCase{Periods: store, Roster: fullRoster(), Clock: store}

	updated, err := update.Execute(context.Background(), UpdatePeriodCommand{
		Actor:     adminActor,
		PeriodID:  period.PeriodID,
		TeacherID: 10,
		RoomID:    5,
		Date:      period.Date.AddDate(0, 0, 7),
		Slot:      entities.SlotEvening,
	})
	if err != nil {
		t.Fatalf("update period: %v", err)
	}
	if updated.ClassID != period.ClassID {
		t.Fatalf("class changed on update: %d -> %d", period.ClassID, updated.ClassID)
	}
	if updated.Slot != entities.SlotEvening {
		t.Fatalf("slot = %s, want EVENING", updated.Slot)
	}
}

func TestUpdatePeriodUnknownTeacher(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	update := UpdatePeriodUseCase{Periods: store, Roster: fullRoster(), Clock: store}

	_, err := update.Execute(context.Background(), UpdatePeriodCommand{
		Actor:     adminActor,
		PeriodID:  period.PeriodID,
		TeacherID: 99,
		RoomID:    5,
		Date:      period.Date,
		Slot:      period.Slot,
	})
	if !errors.Is(err, domainerrors.ErrTeacherNotFound) {
		t.Fatalf("expected teacher not found, got %v", err)
	}
}

func TestDeletePeriodMissing(t *testing.T) {
	store := memory.NewStore()
	remove := DeletePeriodUseCase{Periods: store}

	err := remove.Execute(context.Background(), DeletePeriodCommand{Actor: adminActor, PeriodID: 404})
	if !errors.Is(err, domainerrors.ErrPeriodNotFound) {
		t.Fatalf("expected period not found, got %v", err)
	}
}

func TestCreateVerificationOncePerPeriod(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	create := CreateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}

	teacher := application.Actor{UserID: 10, Role: entities.RoleUser}
	form := entities.VerificationForm{AllOrganized: true, Description: "room left in order"}

	if _, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    teacher,
		PeriodID: period.PeriodID,
		Form:     form,
	}); err != nil {
		t.Fatalf("first verification: %v", err)
	}

	_, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    teacher,
		PeriodID: period.PeriodID,
		Form:     form,
	})
	if !errors.Is(err, domainerrors.ErrVerificationExists) {
		t.Fatalf("expected verification exists, got %v", err)
	}
}

func TestCreateVerificationTwoTierPolicy(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	create := CreateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}
	form := entities.VerificationForm{Description: "checked"}

	// Plain student enrolled in the class is denied.
	_, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    application.Actor{UserID: 50, Role: entities.RoleUser},
		PeriodID: period.PeriodID,
		Form:     form,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("student: expected forbidden, got %v", err)
	}

	// Caller with no enrollment at all is denied.
	_, err = create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    application.Actor{UserID: 77, Role: entities.RoleUser},
		PeriodID: period.PeriodID,
		Form:     form,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("not enrolled: expected forbidden, got %v", err)
	}

	// Representative passes on contextual role alone.
	if _, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    application.Actor{UserID: 60, Role: entities.RoleUser},
		PeriodID: period.PeriodID,
		Form:     form,
	}); err != nil {
		t.Fatalf("representative: %v", err)
	}
}

func TestCreateVerificationAdminWithoutEnrollment(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	create := CreateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}

	// Global ADMIN short-circuits the contextual check.
	if _, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    adminActor,
		PeriodID: period.PeriodID,
		Form:     entities.VerificationForm{Description: "admin walkthrough"},
	}); err != nil {
		t.Fatalf("admin verification: %v", err)
	}
}

func TestCreateVerificationRequiresDescription(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	create := CreateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}

	_, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    adminActor,
		PeriodID: period.PeriodID,
		Form:     entities.VerificationForm{Description: "   "},
	})
	if !errors.Is(err, domainerrors.ErrInvalidVerificationForm) {
		t.Fatalf("expected invalid form, got %v", err)
	}
}

func TestCreateVerificationUnknownPeriod(t *testing.T) {
	store := memory.NewStore()
	create := CreateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}

	_, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    adminActor,
		PeriodID: 404,
		Form:     entities.VerificationForm{Description: "x"},
	})
	if !errors.Is(err, domainerrors.ErrPeriodNotFound) {
		t.Fatalf("expected period not found, got %v", err)
	}
}

func TestUpdateVerificationRewritesForm(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	create := CreateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}
	update := UpdateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}

	created, err := create.Execute(context.Background(), CreateVerificationCommand{
		Actor:    adminActor,
		PeriodID: period.PeriodID,
		Form:     entities.VerificationForm{Description: "initial"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := update.Execute(context.Background(), UpdateVerificationCommand{
		Actor:    adminActor,
		PeriodID: period.PeriodID,
		Form: entities.VerificationForm{
			AllOrganized: true,
			Description:  "revised",
			Ticket:       "T-99",
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.VerificationID != created.VerificationID {
		t.Fatalf("update created a new row: %d vs %d", updated.VerificationID, created.VerificationID)
	}
	if updated.Form.Description != "revised" || !updated.Form.AllOrganized {
		t.Fatalf("form not rewritten: %+v", updated.Form)
	}
}

func TestUpdateVerificationMissingReport(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	update := UpdateVerificationUseCase{Verifications: store, Periods: store, Roster: fullRoster(), Clock: store}

	_, err := update.Execute(context.Background(), UpdateVerificationCommand{
		Actor:    adminActor,
		PeriodID: period.PeriodID,
		Form:     entities.VerificationForm{Description: "x"},
	})
	if !errors.Is(err, domainerrors.ErrVerificationNotFound) {
		t.Fatalf("expected verification not found, got %v", err)
	}
}

func TestRecordAttendanceUpserts(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	record := RecordAttendanceUseCase{Attendance: store, Periods: store, Roster: fullRoster(), Clock: store}
	teacher := application.Actor{UserID: 10, Role: entities.RoleUser}

	first, err := record.Execute(context.Background(), RecordAttendanceCommand{
		Actor:     teacher,
		PeriodID:  period.PeriodID,
		UserID:    50,
		IsPresent: true,
	})
	if err != nil {
		t.Fatalf("first record: %v", err)
	}

	// Re-recording the same pair rewrites the row instead of duplicating.
	second, err := record.Execute(context.Background(), RecordAttendanceCommand{
		Actor:     teacher,
		PeriodID:  period.PeriodID,
		UserID:    50,
		IsPresent: false,
	})
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if second.AttendanceID != first.AttendanceID {
		t.Fatalf("upsert created a new row: %d vs %d", second.AttendanceID, first.AttendanceID)
	}
	if second.IsPresent {
		t.Fatal("is_present not rewritten to false")
	}
}

func TestRecordAttendanceDeniedForStudent(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	record := RecordAttendanceUseCase{Attendance: store, Periods: store, Roster: fullRoster(), Clock: store}

	_, err := record.Execute(context.Background(), RecordAttendanceCommand{
		Actor:     application.Actor{UserID: 50, Role: entities.RoleUser},
		PeriodID:  period.PeriodID,
		UserID:    60,
		IsPresent: true,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRecordAttendanceUnknownUser(t *testing.T) {
	store := memory.NewStore()
	period := seedPeriod(t, store)
	record := RecordAttendanceUseCase{Attendance: store, Periods: store, Roster: fullRoster(), Clock: store}

	_, err := record.Execute(context.Background(), RecordAttendanceCommand{
		Actor:     adminActor,
		PeriodID:  period.PeriodID,
		UserID:    404,
		IsPresent: true,
	})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}
