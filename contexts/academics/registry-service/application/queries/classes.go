package queries

import (
	"context"
	"log/slog"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// GetClassUseCase returns one class by its storage handle.
type GetClassUseCase struct {
	Classes ports.ClassRepository
	Logger  *slog.Logger
}

func (u GetClassUseCase) Execute(ctx context.Context, classID int64) (entities.Class, error) {
	return u.Classes.FindClassByID(ctx, classID)
}

// ClassListResult is one page of a course's classes.
type ClassListResult struct {
	Items []entities.Class `json:"items"`
	Total int64            `json:"total"`
	Page  ports.Page       `json:"page"`
}

// ListClassesUseCase returns a normalized page of the classes in one course.
type ListClassesUseCase struct {
	Classes ports.ClassRepository
	Logger  *slog.Logger
}

func (u ListClassesUseCase) Execute(ctx context.Context, courseID int64, page ports.Page) (ClassListResult, error) {
	page = page.Normalize()
	items, total, err := u.Classes.ListClasses(ctx, courseID, page)
	if err != nil {
		return ClassListResult{}, err
	}
	return ClassListResult{Items: items, Total: total, Page: page}, nil
}
