package commands

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// CreateCourseCommand contains transport-agnostic input for course creation.
type CreateCourseCommand struct {
	Actor       application.Actor
	Name        string
	Acronym     string
	Description string
}

// CreateCourseUseCase checks the course policy and writes a new course.
type CreateCourseUseCase struct {
	Courses  ports.CourseRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u CreateCourseUseCase) Execute(ctx context.Context, cmd CreateCourseCommand) (entities.Course, error) {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanCreate(policies.AggregateCourse, cmd.Actor.Role) {
		logger.Warn("course create denied",
			"event", "registry_course_create_denied",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
		)
		return entities.Course{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Acronym) == "" {
		return entities.Course{}, domainerrors.ErrInvalidCourseInput
	}

	now := u.Clock.Now()
	course, err := u.Courses.SaveCourse(ctx, entities.Course{
		Name:        strings.TrimSpace(cmd.Name),
		Acronym:     strings.TrimSpace(cmd.Acronym),
		Description: cmd.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		logger.Error("course create write failed",
			"event", "registry_course_create_write_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"error", err.Error(),
		)
		return entities.Course{}, err
	}

	logger.Info("course created",
		"event", "registry_course_created",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"course_id", course.CourseID,
	)
	return course, nil
}

// UpdateCourseCommand contains transport-agnostic input for course edits.
type UpdateCourseCommand struct {
	Actor       application.Actor
	CourseID    int64
	Name        string
	Acronym     string
	Description string
}

// UpdateCourseUseCase checks the course policy, verifies the course exists
// and writes the updated fields.
type UpdateCourseUseCase struct {
	Courses  ports.CourseRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateCourseUseCase) Execute(ctx context.Context, cmd UpdateCourseCommand) (entities.Course, error) {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanEdit(policies.AggregateCourse, cmd.Actor.Role) {
		return entities.Course{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Acronym) == "" {
		return entities.Course{}, domainerrors.ErrInvalidCourseInput
	}

	course, err := u.Courses.FindCourseByID(ctx, cmd.CourseID)
	if err != nil {
		return entities.Course{}, err
	}

	course.Name = strings.TrimSpace(cmd.Name)
	course.Acronym = strings.TrimSpace(cmd.Acronym)
	course.Description = cmd.Description
	course.UpdatedAt = u.Clock.Now()

	updated, err := u.Courses.SaveCourse(ctx, course)
	if err != nil {
		logger.Error("course update write failed",
			"event", "registry_course_update_write_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"course_id", cmd.CourseID,
			"error", err.Error(),
		)
		return entities.Course{}, err
	}
	return updated, nil
}

// DeleteCourseCommand contains transport-agnostic input for course removal.
type DeleteCourseCommand struct {
	Actor    application.Actor
	CourseID int64
}

// DeleteCourseUseCase checks the course policy, verifies existence and
// deletes the course. Cascade policy for owned classes belongs to storage.
type DeleteCourseUseCase struct {
	Courses  ports.CourseRepository
	Policies policies.Ruleset
	Logger   *slog.Logger
}

func (u DeleteCourseUseCase) Execute(ctx context.Context, cmd DeleteCourseCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanDelete(policies.AggregateCourse, cmd.Actor.Role) {
		return domainerrors.ErrForbidden
	}

	exists, err := u.Courses.CourseExists(ctx, cmd.CourseID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrCourseNotFound
	}

	if err := u.Courses.DeleteCourse(ctx, cmd.CourseID); err != nil {
		return err
	}

	logger.Info("course deleted",
		"event", "registry_course_deleted",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"course_id", cmd.CourseID,
	)
	return nil
}
