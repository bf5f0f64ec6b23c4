package queries

import (
	"context"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// GetPeriodUseCase returns one period by id.
type GetPeriodUseCase struct {
	Periods ports.PeriodRepository
	Logger  *slog.Logger
}

func (u GetPeriodUseCase) Execute(ctx context.Context, periodID int64) (entities.Period, error) {
	return u.Periods.FindPeriodByID(ctx, periodID)
}

// PeriodListResult is one filtered page of periods.
type PeriodListResult struct {
	Items []entities.Period `json:"items"`
	Total int64             `json:"total"`
	Page  ports.Page        `json:"page"`
}

// ListPeriodsUseCase compiles the filter and returns a normalized page.
type ListPeriodsUseCase struct {
	Periods ports.PeriodRepository
	Logger  *slog.Logger
}

func (u ListPeriodsUseCase) Execute(ctx context.Context, filter ports.PeriodFilter, page ports.Page) (PeriodListResult, error) {
	logger := application.ResolveLogger(u.Logger)

	page = page.Normalize()
	items, total, err := u.Periods.ListPeriods(ctx, filter, page)
	if err != nil {
		logger.Error("period list failed",
			"event", "scheduling_period_list_failed",
			"module", "academics/scheduling-service",
			"layer", "application",
			"error", err.Error(),
		)
		return PeriodListResult{}, err
	}
	return PeriodListResult{Items: items, Total: total, Page: page}, nil
}
