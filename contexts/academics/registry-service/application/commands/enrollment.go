package commands

import (
	"context"
	"errors"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// EnrollUserCommand contains transport-agnostic input for enrolling a user
// into a class with a contextual role.
type EnrollUserCommand struct {
	Actor   application.Actor
	ClassID int64
	UserID  int64
	Role    entities.ClassRole
}

// EnrollUserUseCase verifies class and user exist, then writes the
// enrollment. The (class_id, user_id) unique constraint rejects a duplicate
// pair; one user holds at most one contextual role per class.
type EnrollUserUseCase struct {
	Enrollments ports.EnrollmentRepository
	Classes     ports.ClassRepository
	Users       ports.UserRepository
	Policies    policies.Ruleset
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (u EnrollUserUseCase) Execute(ctx context.Context, cmd EnrollUserCommand) (entities.Enrollment, error) {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanCreate(policies.AggregateEnrollment, cmd.Actor.Role) {
		return entities.Enrollment{}, domainerrors.ErrForbidden
	}
	if !entities.ValidClassRole(cmd.Role) {
		return entities.Enrollment{}, domainerrors.ErrInvalidClassRole
	}

	classExists, err := u.Classes.ClassExists(ctx, cmd.ClassID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if !classExists {
		return entities.Enrollment{}, domainerrors.ErrClassNotFound
	}

	userExists, err := u.Users.UserExists(ctx, cmd.UserID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if !userExists {
		return entities.Enrollment{}, domainerrors.ErrUserNotFound
	}

	// Fast-fail on an existing pair; the composite key is the backstop.
	if _, err := u.Enrollments.FindEnrollment(ctx, entities.EnrollmentKey{
		ClassID: cmd.ClassID,
		UserID:  cmd.UserID,
	}); err == nil {
		return entities.Enrollment{}, domainerrors.ErrEnrollmentExists
	} else if !errors.Is(err, domainerrors.ErrEnrollmentNotFound) {
		return entities.Enrollment{}, err
	}

	enrollment, err := u.Enrollments.SaveEnrollment(ctx, entities.Enrollment{
		Key: entities.EnrollmentKey{
			ClassID: cmd.ClassID,
			UserID:  cmd.UserID,
		},
		Role:      cmd.Role,
		CreatedAt: u.Clock.Now(),
	})
	if err != nil {
		logger.Error("enrollment write failed",
			"event", "registry_enrollment_write_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"class_id", cmd.ClassID,
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return entities.Enrollment{}, err
	}

	logger.Info("user enrolled",
		"event", "registry_user_enrolled",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"class_id", cmd.ClassID,
		"user_id", cmd.UserID,
		"class_role", string(cmd.Role),
	)
	return enrollment, nil
}

// UnenrollUserCommand contains transport-agnostic input for removing a
// user's enrollment from a class.
type UnenrollUserCommand struct {
	Actor   application.Actor
	ClassID int64
	UserID  int64
}

// UnenrollUserUseCase verifies the enrollment exists and deletes it.
type UnenrollUserUseCase struct {
	Enrollments ports.EnrollmentRepository
	Policies    policies.Ruleset
	Logger      *slog.Logger
}

func (u UnenrollUserUseCase) Execute(ctx context.Context, cmd UnenrollUserCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanDelete(policies.AggregateEnrollment, cmd.Actor.Role) {
		return domainerrors.ErrForbidden
	}

	key := entities.EnrollmentKey{ClassID: cmd.ClassID, UserID: cmd.UserID}
	if _, err := u.Enrollments.FindEnrollment(ctx, key); err != nil {
		return err
	}
	if err := u.Enrollments.DeleteEnrollment(ctx, key); err != nil {
		return err
	}

	logger.Info("user unenrolled",
		"event", "registry_user_unenrolled",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"class_id", cmd.ClassID,
		"user_id", cmd.UserID,
	)
	return nil
}
