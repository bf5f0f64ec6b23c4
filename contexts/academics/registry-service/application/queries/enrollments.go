package queries

import (
	"context"
	"log/slog"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// GetEnrollmentUseCase returns the enrollment for one (class, user) pair.
type GetEnrollmentUseCase struct {
	Enrollments ports.EnrollmentRepository
	Logger      *slog.Logger
}

func (u GetEnrollmentUseCase) Execute(ctx context.Context, key entities.EnrollmentKey) (entities.Enrollment, error) {
	return u.Enrollments.FindEnrollment(ctx, key)
}

// EnrollmentListResult is one page of a class's enrollments.
type EnrollmentListResult struct {
	Items []entities.Enrollment `json:"items"`
	Total int64                 `json:"total"`
	Page  ports.Page            `json:"page"`
}

// ListEnrollmentsUseCase returns a normalized page of one class's members.
type ListEnrollmentsUseCase struct {
	Enrollments ports.EnrollmentRepository
	Logger      *slog.Logger
}

func (u ListEnrollmentsUseCase) Execute(ctx context.Context, classID int64, page ports.Page) (EnrollmentListResult, error) {
	page = page.Normalize()
	items, total, err := u.Enrollments.ListEnrollmentsByClass(ctx, classID, page)
	if err != nil {
		return EnrollmentListResult{}, err
	}
	return EnrollmentListResult{Items: items, Total: total, Page: page}, nil
}
