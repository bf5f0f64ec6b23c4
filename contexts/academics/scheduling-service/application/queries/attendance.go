package queries

import (
	"context"
	"log/slog"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// AttendanceListResult is one page of a period's attendance rows.
type AttendanceListResult struct {
	Items []entities.Attendance `json:"items"`
	Total int64                 `json:"total"`
	Page  ports.Page            `json:"page"`
}

// ListAttendanceUseCase returns a normalized page of attendance for one
// period, rejecting unknown periods rather than returning an empty page.
type ListAttendanceUseCase struct {
	Attendance ports.AttendanceRepository
	Periods    ports.PeriodRepository
	Logger     *slog.Logger
}

func (u ListAttendanceUseCase) Execute(ctx context.Context, periodID int64, page ports.Page) (AttendanceListResult, error) {
	exists, err := u.Periods.PeriodExists(ctx, periodID)
	if err != nil {
		return AttendanceListResult{}, err
	}
	if !exists {
		return AttendanceListResult{}, domainerrors.ErrPeriodNotFound
	}

	page = page.Normalize()
	items, total, err := u.Attendance.ListAttendanceByPeriod(ctx, periodID, page)
	if err != nil {
		return AttendanceListResult{}, err
	}
	return AttendanceListResult{Items: items, Total: total, Page: page}, nil
}
