package commands

import (
	"context"
	"log/slog"
	"time"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// CreatePeriodCommand contains transport-agnostic input for scheduling one
// class session.
type CreatePeriodCommand struct {
	Actor     application.Actor
	TeacherID int64
	RoomID    int64
	ClassID   int64
	Date      time.Time
	Slot      entities.Slot
}

// CreatePeriodUseCase verifies every referenced aggregate exists before the
// write. Checks are ordered before the save; absence is a not-found failure,
// never a silent no-op.
type CreatePeriodUseCase struct {
	Periods ports.PeriodRepository
	Roster  ports.RosterDirectory
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u CreatePeriodUseCase) Execute(ctx context.Context, cmd CreatePeriodCommand) (entities.Period, error) {
	logger := application.ResolveLogger(u.Logger)

	if !policies.CanManagePeriods(cmd.Actor.Role) {
		return entities.Period{}, domainerrors.ErrForbidden
	}
	if !entities.ValidSlot(cmd.Slot) {
		return entities.Period{}, domainerrors.ErrInvalidSlot
	}
	if cmd.Date.IsZero() {
		return entities.Period{}, domainerrors.ErrInvalidPeriodDate
	}

	if err := u.checkReferences(ctx, cmd.TeacherID, cmd.RoomID, cmd.ClassID); err != nil {
		return entities.Period{}, err
	}

	now := u.Clock.Now()
	period, err := u.Periods.SavePeriod(ctx, entities.Period{
		TeacherID: cmd.TeacherID,
		RoomID:    cmd.RoomID,
		ClassID:   cmd.ClassID,
		Date:      cmd.Date,
		Slot:      cmd.Slot,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Error("period create write failed",
			"event", "scheduling_period_create_write_failed",
			"module", "academics/scheduling-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"class_id", cmd.ClassID,
			"error", err.Error(),
		)
		return entities.Period{}, err
	}

	logger.Info("period created",
		"event", "scheduling_period_created",
		"module", "academics/scheduling-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"period_id", period.PeriodID,
		"class_id", period.ClassID,
	)
	return period, nil
}

func (u CreatePeriodUseCase) checkReferences(ctx context.Context, teacherID, roomID, classID int64) error {
	teacherExists, err := u.Roster.UserExists(ctx, teacherID)
	if err != nil {
		return err
	}
	if !teacherExists {
		return domainerrors.ErrTeacherNotFound
	}

	roomExists, err := u.Roster.RoomExists(ctx, roomID)
	if err != nil {
		return err
	}
	if !roomExists {
		return domainerrors.ErrRoomNotFound
	}

	classExists, err := u.Roster.ClassExists(ctx, classID)
	if err != nil {
		return err
	}
	if !classExists {
		return domainerrors.ErrClassNotFound
	}
	return nil
}

// UpdatePeriodCommand contains transport-agnostic input for rescheduling.
type UpdatePeriodCommand struct {
	Actor     application.Actor
	PeriodID  int64
	TeacherID int64
	RoomID    int64
	Date      time.Time
	Slot      entities.Slot
}

// UpdatePeriodUseCase re-runs the same referential checks as create for the
// fields that change. The owning class is immutable.
type UpdatePeriodUseCase struct {
	Periods ports.PeriodRepository
	Roster  ports.RosterDirectory
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u UpdatePeriodUseCase) Execute(ctx context.Context, cmd UpdatePeriodCommand) (entities.Period, error) {
	if !policies.CanManagePeriods(cmd.Actor.Role) {
		return entities.Period{}, domainerrors.ErrForbidden
	}
	if !entities.ValidSlot(cmd.Slot) {
		return entities.Period{}, domainerrors.ErrInvalidSlot
	}
	if cmd.Date.IsZero() {
		return entities.Period{}, domainerrors.ErrInvalidPeriodDate
	}

	period, err := u.Periods.FindPeriodByID(ctx, cmd.PeriodID)
	if err != nil {
		return entities.Period{}, err
	}

	teacherExists, err := u.Roster.UserExists(ctx, cmd.TeacherID)
	if err != nil {
		return entities.Period{}, err
	}
	if !teacherExists {
		return entities.Period{}, domainerrors.ErrTeacherNotFound
	}

	roomExists, err := u.Roster.RoomExists(ctx, cmd.RoomID)
	if err != nil {
		return entities.Period{}, err
	}
	if !roomExists {
		return entities.Period{}, domainerrors.ErrRoomNotFound
	}

	period.TeacherID = cmd.TeacherID
	period.RoomID = cmd.RoomID
	period.Date = cmd.Date
	period.Slot = cmd.Slot
	period.UpdatedAt = u.Clock.Now()

	return u.Periods.SavePeriod(ctx, period)
}

// DeletePeriodCommand contains transport-agnostic input for unscheduling.
type DeletePeriodCommand struct {
	Actor    application.Actor
	PeriodID int64
}

// DeletePeriodUseCase verifies existence and deletes the period.
type DeletePeriodUseCase struct {
	Periods ports.PeriodRepository
	Logger  *slog.Logger
}

func (u DeletePeriodUseCase) Execute(ctx context.Context, cmd DeletePeriodCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !policies.CanManagePeriods(cmd.Actor.Role) {
		return domainerrors.ErrForbidden
	}

	exists, err := u.Periods.PeriodExists(ctx, cmd.PeriodID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrPeriodNotFound
	}

	if err := u.Periods.DeletePeriod(ctx, cmd.PeriodID); err != nil {
		return err
	}

	logger.Info("period deleted",
		"event", "scheduling_period_deleted",
		"module", "academics/scheduling-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"period_id", cmd.PeriodID,
	)
	return nil
}
