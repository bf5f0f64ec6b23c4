package commands

import (
	"context"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// RecordAttendanceCommand contains transport-agnostic input for marking one
// user present or absent in a period.
type RecordAttendanceCommand struct {
	Actor     application.Actor
	PeriodID  int64
	UserID    int64
	IsPresent bool
}

// RecordAttendanceUseCase applies the two-tier policy against the period's
// class and upserts the (period, user) attendance row.
type RecordAttendanceUseCase struct {
	Attendance ports.AttendanceRepository
	Periods    ports.PeriodRepository
	Roster     ports.RosterDirectory
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u RecordAttendanceUseCase) Execute(ctx context.Context, cmd RecordAttendanceCommand) (entities.Attendance, error) {
	logger := application.ResolveLogger(u.Logger)

	period, err := u.Periods.FindPeriodByID(ctx, cmd.PeriodID)
	if err != nil {
		return entities.Attendance{}, err
	}

	classRole, err := u.Roster.ClassRoleFor(ctx, period.ClassID, cmd.Actor.UserID)
	if err != nil {
		return entities.Attendance{}, err
	}
	if !policies.CanRecordAttendance(cmd.Actor.Role, classRole) {
		return entities.Attendance{}, domainerrors.ErrForbidden
	}

	userExists, err := u.Roster.UserExists(ctx, cmd.UserID)
	if err != nil {
		return entities.Attendance{}, err
	}
	if !userExists {
		return entities.Attendance{}, domainerrors.ErrUserNotFound
	}

	attendance, err := u.Attendance.SaveAttendance(ctx, entities.Attendance{
		PeriodID:   cmd.PeriodID,
		UserID:     cmd.UserID,
		IsPresent:  cmd.IsPresent,
		RecordedAt: u.Clock.Now(),
	})
	if err != nil {
		logger.Error("attendance write failed",
			"event", "scheduling_attendance_write_failed",
			"module", "academics/scheduling-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"period_id", cmd.PeriodID,
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return entities.Attendance{}, err
	}

	logger.Info("attendance recorded",
		"event", "scheduling_attendance_recorded",
		"module", "academics/scheduling-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"period_id", cmd.PeriodID,
		"user_id", cmd.UserID,
		"is_present", cmd.IsPresent,
	)
	return attendance, nil
}
