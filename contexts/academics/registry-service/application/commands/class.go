package commands

import (
	"context"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// CreateClassCommand contains transport-agnostic input for class creation.
// The class number is never client-supplied; it is assigned here.
type CreateClassCommand struct {
	Actor      application.Actor
	CourseID   int64
	TotalHours int
	Shift      entities.Shift
}

// CreateClassUseCase assigns the next sequential number within the course
// and writes the class. The number computation and the save are not atomic;
// the (course_id, number) unique constraint in storage is the backstop, and
// SaveClass surfaces that rejection as ErrClassNumberTaken.
type CreateClassUseCase struct {
	Classes  ports.ClassRepository
	Courses  ports.CourseRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u CreateClassUseCase) Execute(ctx context.Context, cmd CreateClassCommand) (entities.Class, error) {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanCreate(policies.AggregateClass, cmd.Actor.Role) {
		return entities.Class{}, domainerrors.ErrForbidden
	}
	if cmd.TotalHours < 0 || cmd.TotalHours > entities.MaxTotalHours {
		return entities.Class{}, domainerrors.ErrInvalidTotalHours
	}
	if !entities.ValidShift(cmd.Shift) {
		return entities.Class{}, domainerrors.ErrInvalidShift
	}

	exists, err := u.Courses.CourseExists(ctx, cmd.CourseID)
	if err != nil {
		return entities.Class{}, err
	}
	if !exists {
		return entities.Class{}, domainerrors.ErrCourseNotFound
	}

	// Strict max+1: numbers freed by deletion are never reused.
	maxNumber, err := u.Classes.MaxClassNumber(ctx, cmd.CourseID)
	if err != nil {
		return entities.Class{}, err
	}

	now := u.Clock.Now()
	class, err := u.Classes.SaveClass(ctx, entities.Class{
		Key: entities.ClassKey{
			CourseID: cmd.CourseID,
			Number:   maxNumber + 1,
		},
		TotalHours: cmd.TotalHours,
		Shift:      cmd.Shift,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		logger.Error("class create write failed",
			"event", "registry_class_create_write_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"course_id", cmd.CourseID,
			"error", err.Error(),
		)
		return entities.Class{}, err
	}

	logger.Info("class created",
		"event", "registry_class_created",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"course_id", cmd.CourseID,
		"class_number", class.Key.Number,
	)
	return class, nil
}

// UpdateClassCommand contains transport-agnostic input for class edits.
// The composite identity (course, number) is immutable.
type UpdateClassCommand struct {
	Actor      application.Actor
	ClassID    int64
	TotalHours int
	Shift      entities.Shift
}

// UpdateClassUseCase checks the class policy and rewrites mutable fields.
type UpdateClassUseCase struct {
	Classes  ports.ClassRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateClassUseCase) Execute(ctx context.Context, cmd UpdateClassCommand) (entities.Class, error) {
	if !u.Policies.CanEdit(policies.AggregateClass, cmd.Actor.Role) {
		return entities.Class{}, domainerrors.ErrForbidden
	}
	if cmd.TotalHours < 0 || cmd.TotalHours > entities.MaxTotalHours {
		return entities.Class{}, domainerrors.ErrInvalidTotalHours
	}
	if !entities.ValidShift(cmd.Shift) {
		return entities.Class{}, domainerrors.ErrInvalidShift
	}

	class, err := u.Classes.FindClassByID(ctx, cmd.ClassID)
	if err != nil {
		return entities.Class{}, err
	}

	class.TotalHours = cmd.TotalHours
	class.Shift = cmd.Shift
	class.UpdatedAt = u.Clock.Now()

	return u.Classes.SaveClass(ctx, class)
}

// DeleteClassCommand contains transport-agnostic input for class removal.
type DeleteClassCommand struct {
	Actor   application.Actor
	ClassID int64
}

// DeleteClassUseCase checks the class policy, verifies existence and deletes
// the class. Its number is not returned to the course's numbering pool.
type DeleteClassUseCase struct {
	Classes  ports.ClassRepository
	Policies policies.Ruleset
	Logger   *slog.Logger
}

func (u DeleteClassUseCase) Execute(ctx context.Context, cmd DeleteClassCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanDelete(policies.AggregateClass, cmd.Actor.Role) {
		return domainerrors.ErrForbidden
	}

	exists, err := u.Classes.ClassExists(ctx, cmd.ClassID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrClassNotFound
	}

	if err := u.Classes.DeleteClass(ctx, cmd.ClassID); err != nil {
		return err
	}

	logger.Info("class deleted",
		"event", "registry_class_deleted",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"class_id", cmd.ClassID,
	)
	return nil
}
