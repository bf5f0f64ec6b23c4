package queries

import (
	"context"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// GetCourseUseCase returns one course by id.
type GetCourseUseCase struct {
	Courses ports.CourseRepository
	Logger  *slog.Logger
}

func (u GetCourseUseCase) Execute(ctx context.Context, courseID int64) (entities.Course, error) {
	return u.Courses.FindCourseByID(ctx, courseID)
}

// CourseListResult is one page of courses plus the unpaged total.
type CourseListResult struct {
	Items []entities.Course `json:"items"`
	Total int64             `json:"total"`
	Page  ports.Page        `json:"page"`
}

// ListCoursesUseCase returns a normalized page of courses.
type ListCoursesUseCase struct {
	Courses ports.CourseRepository
	Logger  *slog.Logger
}

func (u ListCoursesUseCase) Execute(ctx context.Context, page ports.Page) (CourseListResult, error) {
	logger := application.ResolveLogger(u.Logger)

	page = page.Normalize()
	items, total, err := u.Courses.ListCourses(ctx, page)
	if err != nil {
		logger.Error("course list failed",
			"event", "registry_course_list_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"error", err.Error(),
		)
		return CourseListResult{}, err
	}
	return CourseListResult{Items: items, Total: total, Page: page}, nil
}
