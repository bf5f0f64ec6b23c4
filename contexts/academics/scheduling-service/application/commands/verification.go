package commands

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// CreateVerificationCommand contains transport-agnostic input for filing a
// room report against a period.
type CreateVerificationCommand struct {
	Actor    application.Actor
	PeriodID int64
	Form     entities.VerificationForm
}

// CreateVerificationUseCase runs the scope-sensitive pipeline: resolve the
// period, resolve the caller's contextual role for the period's class once,
// evaluate the two-tier policy, enforce one-verification-per-period, write.
// The unique constraint on period_id in storage is the backstop for the
// existence check and SaveVerification maps it to ErrVerificationExists.
type CreateVerificationUseCase struct {
	Verifications ports.VerificationRepository
	Periods       ports.PeriodRepository
	Roster        ports.RosterDirectory
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (u CreateVerificationUseCase) Execute(ctx context.Context, cmd CreateVerificationCommand) (entities.RoomVerification, error) {
	logger := application.ResolveLogger(u.Logger)

	period, err := u.Periods.FindPeriodByID(ctx, cmd.PeriodID)
	if err != nil {
		return entities.RoomVerification{}, err
	}

	classRole, err := u.Roster.ClassRoleFor(ctx, period.ClassID, cmd.Actor.UserID)
	if err != nil {
		return entities.RoomVerification{}, err
	}
	if !policies.CanCreateVerification(cmd.Actor.Role, classRole) {
		logger.Warn("verification create denied",
			"event", "scheduling_verification_create_denied",
			"module", "academics/scheduling-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"period_id", cmd.PeriodID,
			"class_role", string(classRole),
		)
		return entities.RoomVerification{}, domainerrors.ErrForbidden
	}

	if strings.TrimSpace(cmd.Form.Description) == "" {
		return entities.RoomVerification{}, domainerrors.ErrInvalidVerificationForm
	}

	exists, err := u.Verifications.VerificationExistsForPeriod(ctx, cmd.PeriodID)
	if err != nil {
		return entities.RoomVerification{}, err
	}
	if exists {
		return entities.RoomVerification{}, domainerrors.ErrVerificationExists
	}

	now := u.Clock.Now()
	verification, err := u.Verifications.SaveVerification(ctx, entities.RoomVerification{
		PeriodID:     cmd.PeriodID,
		RegisteredAt: now,
		Form:         cmd.Form,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.Error("verification write failed",
			"event", "scheduling_verification_write_failed",
			"module", "academics/scheduling-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"period_id", cmd.PeriodID,
			"error", err.Error(),
		)
		return entities.RoomVerification{}, err
	}

	logger.Info("verification created",
		"event", "scheduling_verification_created",
		"module", "academics/scheduling-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"period_id", cmd.PeriodID,
		"verification_id", verification.VerificationID,
	)
	return verification, nil
}

// UpdateVerificationCommand contains transport-agnostic input for revising a
// filed room report.
type UpdateVerificationCommand struct {
	Actor    application.Actor
	PeriodID int64
	Form     entities.VerificationForm
}

// UpdateVerificationUseCase applies the same two-tier policy as create and
// rewrites the report form.
type UpdateVerificationUseCase struct {
	Verifications ports.VerificationRepository
	Periods       ports.PeriodRepository
	Roster        ports.RosterDirectory
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (u UpdateVerificationUseCase) Execute(ctx context.Context, cmd UpdateVerificationCommand) (entities.RoomVerification, error) {
	logger := application.ResolveLogger(u.Logger)

	period, err := u.Periods.FindPeriodByID(ctx, cmd.PeriodID)
	if err != nil {
		return entities.RoomVerification{}, err
	}

	classRole, err := u.Roster.ClassRoleFor(ctx, period.ClassID, cmd.Actor.UserID)
	if err != nil {
		return entities.RoomVerification{}, err
	}
	if !policies.CanUpdateVerification(cmd.Actor.Role, classRole) {
		return entities.RoomVerification{}, domainerrors.ErrForbidden
	}

	if strings.TrimSpace(cmd.Form.Description) == "" {
		return entities.RoomVerification{}, domainerrors.ErrInvalidVerificationForm
	}

	verification, err := u.Verifications.FindVerificationByPeriod(ctx, cmd.PeriodID)
	if err != nil {
		return entities.RoomVerification{}, err
	}

	verification.Form = cmd.Form
	verification.UpdatedAt = u.Clock.Now()

	updated, err := u.Verifications.SaveVerification(ctx, verification)
	if err != nil {
		return entities.RoomVerification{}, err
	}

	logger.Info("verification updated",
		"event", "scheduling_verification_updated",
		"module", "academics/scheduling-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"period_id", cmd.PeriodID,
	)
	return updated, nil
}
