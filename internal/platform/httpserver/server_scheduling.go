package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	schedulingapp "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application"
	schedulingentities "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	schedulingerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	schedulingports "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
	schedulinghttp "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/transport/http"

	"github.com/go-playground/validator/v10"
)

func writeSchedulingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, schedulinghttp.ErrorResponse{Code: code, Message: message})
}

func writeSchedulingDomainError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		writeSchedulingError(w, http.StatusBadRequest, "invalid_payload", err.Error())
	case errors.Is(err, schedulingerrors.ErrForbidden):
		writeSchedulingError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, schedulingerrors.ErrPeriodNotFound),
		errors.Is(err, schedulingerrors.ErrVerificationNotFound),
		errors.Is(err, schedulingerrors.ErrTeacherNotFound),
		errors.Is(err, schedulingerrors.ErrRoomNotFound),
		errors.Is(err, schedulingerrors.ErrClassNotFound),
		errors.Is(err, schedulingerrors.ErrUserNotFound):
		writeSchedulingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, schedulingerrors.ErrVerificationExists):
		writeSchedulingError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, schedulingerrors.ErrInvalidSlot),
		errors.Is(err, schedulingerrors.ErrInvalidPeriodDate),
		errors.Is(err, schedulingerrors.ErrInvalidVerificationForm):
		writeSchedulingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeSchedulingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) schedulingActor(w http.ResponseWriter, r *http.Request) (schedulingapp.Actor, bool) {
	caller, err := s.resolveIdentity(r)
	if err != nil {
		writeSchedulingError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return schedulingapp.Actor{}, false
	}
	return schedulingapp.Actor{UserID: caller.UserID, Role: schedulingentities.Role(caller.Role)}, true
}

// parsePeriodFilter reads the optional query parameters into the filter.
// Absent parameters keep the filter fields at their unset values so the
// repository omits them from the predicate set.
func parsePeriodFilter(r *http.Request) (schedulingports.PeriodFilter, error) {
	var filter schedulingports.PeriodFilter
	query := r.URL.Query()

	for _, field := range []struct {
		name   string
		target *int64
	}{
		{"teacher_id", &filter.TeacherID},
		{"room_id", &filter.RoomID},
		{"class_id", &filter.ClassID},
	} {
		raw := query.Get(field.name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		*field.target = id
	}

	filter.Slot = schedulingentities.Slot(query.Get("slot"))

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.Date = date
	}
	return filter, nil
}

func (s *Server) handleCreatePeriod(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.schedulingActor(w, r)
	if !ok {
		return
	}
	var req schedulinghttp.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := schedulinghttp.Validate(req); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	resp, err := s.scheduling.Handler.CreatePeriodHandler(r.Context(), actor, req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdatePeriod(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.schedulingActor(w, r)
	if !ok {
		return
	}
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	var req schedulinghttp.UpdatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := schedulinghttp.Validate(req); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	resp, err := s.scheduling.Handler.UpdatePeriodHandler(r.Context(), actor, periodID, req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePeriod(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.schedulingActor(w, r)
	if !ok {
		return
	}
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	if err := s.scheduling.Handler.DeletePeriodHandler(r.Context(), actor, periodID); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetPeriod(w http.ResponseWriter, r *http.Request) {
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	resp, err := s.scheduling.Handler.GetPeriodHandler(r.Context(), periodID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPeriods(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePeriodFilter(r)
	if err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_filter", "filter parameters must be well formed")
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.scheduling.Handler.ListPeriodsHandler(r.Context(), filter, schedulingports.Page{
		Number: page.Number,
		Size:   page.Size,
	})
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateVerification(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.schedulingActor(w, r)
	if !ok {
		return
	}
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	var req schedulinghttp.VerificationFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := schedulinghttp.Validate(req); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	resp, err := s.scheduling.Handler.CreateVerificationHandler(r.Context(), actor, periodID, req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateVerification(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.schedulingActor(w, r)
	if !ok {
		return
	}
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	var req schedulinghttp.VerificationFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := schedulinghttp.Validate(req); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	resp, err := s.scheduling.Handler.UpdateVerificationHandler(r.Context(), actor, periodID, req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVerification(w http.ResponseWriter, r *http.Request) {
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	resp, err := s.scheduling.Handler.GetVerificationHandler(r.Context(), periodID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordAttendance(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.schedulingActor(w, r)
	if !ok {
		return
	}
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	var req schedulinghttp.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := schedulinghttp.Validate(req); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	resp, err := s.scheduling.Handler.RecordAttendanceHandler(r.Context(), actor, periodID, req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	periodID, ok := pathID(w, r, "period_id", writeSchedulingError)
	if !ok {
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.scheduling.Handler.ListAttendanceHandler(r.Context(), periodID, schedulingports.Page{
		Number: page.Number,
		Size:   page.Size,
	})
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
