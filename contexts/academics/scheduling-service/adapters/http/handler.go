package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application/commands"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application/queries"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
	httptransport "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/transport/http"
)

const dateLayout = "2006-01-02"

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreatePeriod commands.CreatePeriodUseCase
	UpdatePeriod commands.UpdatePeriodUseCase
	DeletePeriod commands.DeletePeriodUseCase
	GetPeriod    queries.GetPeriodUseCase
	ListPeriods  queries.ListPeriodsUseCase

	CreateVerification commands.CreateVerificationUseCase
	UpdateVerification commands.UpdateVerificationUseCase
	GetVerification    queries.GetVerificationUseCase

	RecordAttendance commands.RecordAttendanceUseCase
	ListAttendance   queries.ListAttendanceUseCase

	Logger *slog.Logger
}

func (h Handler) CreatePeriodHandler(ctx context.Context, actor application.Actor, request httptransport.CreatePeriodRequest) (httptransport.PeriodResponse, error) {
	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return httptransport.PeriodResponse{}, domainerrors.ErrInvalidPeriodDate
	}

	period, err := h.CreatePeriod.Execute(ctx, commands.CreatePeriodCommand{
		Actor:     actor,
		TeacherID: request.TeacherID,
		RoomID:    request.RoomID,
		ClassID:   request.ClassID,
		Date:      date,
		Slot:      entities.Slot(request.Slot),
	})
	if err != nil {
		return httptransport.PeriodResponse{}, err
	}
	return periodResponse(period), nil
}

func (h Handler) UpdatePeriodHandler(ctx context.Context, actor application.Actor, periodID int64, request httptransport.UpdatePeriodRequest) (httptransport.PeriodResponse, error) {
	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return httptransport.PeriodResponse{}, domainerrors.ErrInvalidPeriodDate
	}

	period, err := h.UpdatePeriod.Execute(ctx, commands.UpdatePeriodCommand{
		Actor:     actor,
		PeriodID:  periodID,
		TeacherID: request.TeacherID,
		RoomID:    request.RoomID,
		Date:      date,
		Slot:      entities.Slot(request.Slot),
	})
	if err != nil {
		return httptransport.PeriodResponse{}, err
	}
	return periodResponse(period), nil
}

func (h Handler) DeletePeriodHandler(ctx context.Context, actor application.Actor, periodID int64) error {
	return h.DeletePeriod.Execute(ctx, commands.DeletePeriodCommand{Actor: actor, PeriodID: periodID})
}

func (h Handler) GetPeriodHandler(ctx context.Context, periodID int64) (httptransport.PeriodResponse, error) {
	period, err := h.GetPeriod.Execute(ctx, periodID)
	if err != nil {
		return httptransport.PeriodResponse{}, err
	}
	return periodResponse(period), nil
}

// ListPeriodsHandler accepts the already-parsed filter; the server parses
// query parameters into it using the unset conventions (ids ≤ 0, empty
// slot, zero date).
func (h Handler) ListPeriodsHandler(ctx context.Context, filter ports.PeriodFilter, page ports.Page) (httptransport.PeriodListResponse, error) {
	result, err := h.ListPeriods.Execute(ctx, filter, page)
	if err != nil {
		return httptransport.PeriodListResponse{}, err
	}
	items := make([]httptransport.PeriodResponse, 0, len(result.Items))
	for _, period := range result.Items {
		items = append(items, periodResponse(period))
	}
	return httptransport.PeriodListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func (h Handler) CreateVerificationHandler(ctx context.Context, actor application.Actor, periodID int64, request httptransport.VerificationFormRequest) (httptransport.VerificationResponse, error) {
	verification, err := h.CreateVerification.Execute(ctx, commands.CreateVerificationCommand{
		Actor:    actor,
		PeriodID: periodID,
		Form: entities.VerificationForm{
			AllOrganized: request.AllOrganized,
			Description:  request.Description,
			Observations: request.Observations,
			Ticket:       request.Ticket,
		},
	})
	if err != nil {
		return httptransport.VerificationResponse{}, err
	}
	return verificationResponse(verification), nil
}

func (h Handler) UpdateVerificationHandler(ctx context.Context, actor application.Actor, periodID int64, request httptransport.VerificationFormRequest) (httptransport.VerificationResponse, error) {
	verification, err := h.UpdateVerification.Execute(ctx, commands.UpdateVerificationCommand{
		Actor:    actor,
		PeriodID: periodID,
		Form: entities.VerificationForm{
			AllOrganized: request.AllOrganized,
			Description:  request.Description,
			Observations: request.Observations,
			Ticket:       request.Ticket,
		},
	})
	if err != nil {
		return httptransport.VerificationResponse{}, err
	}
	return verificationResponse(verification), nil
}

func (h Handler) GetVerificationHandler(ctx context.Context, periodID int64) (httptransport.VerificationResponse, error) {
	verification, err := h.GetVerification.Execute(ctx, periodID)
	if err != nil {
		return httptransport.VerificationResponse{}, err
	}
	return verificationResponse(verification), nil
}

func (h Handler) RecordAttendanceHandler(ctx context.Context, actor application.Actor, periodID int64, request httptransport.RecordAttendanceRequest) (httptransport.AttendanceResponse, error) {
	attendance, err := h.RecordAttendance.Execute(ctx, commands.RecordAttendanceCommand{
		Actor:     actor,
		PeriodID:  periodID,
		UserID:    request.UserID,
		IsPresent: request.IsPresent,
	})
	if err != nil {
		return httptransport.AttendanceResponse{}, err
	}
	return attendanceResponse(attendance), nil
}

func (h Handler) ListAttendanceHandler(ctx context.Context, periodID int64, page ports.Page) (httptransport.AttendanceListResponse, error) {
	result, err := h.ListAttendance.Execute(ctx, periodID, page)
	if err != nil {
		return httptransport.AttendanceListResponse{}, err
	}
	items := make([]httptransport.AttendanceResponse, 0, len(result.Items))
	for _, attendance := range result.Items {
		items = append(items, attendanceResponse(attendance))
	}
	return httptransport.AttendanceListResponse{
		Items:      items,
		Total:      result.Total,
		PageNumber: result.Page.Number,
		PageSize:   result.Page.Size,
	}, nil
}

func periodResponse(period entities.Period) httptransport.PeriodResponse {
	return httptransport.PeriodResponse{
		PeriodID:  period.PeriodID,
		TeacherID: period.TeacherID,
		RoomID:    period.RoomID,
		ClassID:   period.ClassID,
		Date:      period.Date.Format(dateLayout),
		Slot:      string(period.Slot),
		CreatedAt: period.CreatedAt,
		UpdatedAt: period.UpdatedAt,
	}
}

func verificationResponse(verification entities.RoomVerification) httptransport.VerificationResponse {
	return httptransport.VerificationResponse{
		VerificationID: verification.VerificationID,
		PeriodID:       verification.PeriodID,
		RegisteredAt:   verification.RegisteredAt,
		AllOrganized:   verification.Form.AllOrganized,
		Description:    verification.Form.Description,
		Observations:   verification.Form.Observations,
		Ticket:         verification.Form.Ticket,
		UpdatedAt:      verification.UpdatedAt,
	}
}

func attendanceResponse(attendance entities.Attendance) httptransport.AttendanceResponse {
	return httptransport.AttendanceResponse{
		AttendanceID: attendance.AttendanceID,
		PeriodID:     attendance.PeriodID,
		UserID:       attendance.UserID,
		IsPresent:    attendance.IsPresent,
		RecordedAt:   attendance.RecordedAt,
	}
}
