package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	registryapp "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	registryentities "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	registryerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	registryhttp "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/transport/http"

	"github.com/go-playground/validator/v10"
)

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{Code: code, Message: message})
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		writeRegistryError(w, http.StatusBadRequest, "invalid_payload", err.Error())
	case errors.Is(err, registryerrors.ErrForbidden):
		writeRegistryError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, registryerrors.ErrUserNotFound),
		errors.Is(err, registryerrors.ErrCourseNotFound),
		errors.Is(err, registryerrors.ErrClassNotFound),
		errors.Is(err, registryerrors.ErrEnrollmentNotFound),
		errors.Is(err, registryerrors.ErrRoomNotFound):
		writeRegistryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, registryerrors.ErrEnrollmentExists),
		errors.Is(err, registryerrors.ErrRoomNumberTaken),
		errors.Is(err, registryerrors.ErrClassNumberTaken):
		writeRegistryError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidCourseInput),
		errors.Is(err, registryerrors.ErrInvalidTotalHours),
		errors.Is(err, registryerrors.ErrInvalidShift),
		errors.Is(err, registryerrors.ErrInvalidClassRole),
		errors.Is(err, registryerrors.ErrInvalidRoomType),
		errors.Is(err, registryerrors.ErrInvalidRoomNumber),
		errors.Is(err, registryerrors.ErrInvalidUserInput):
		writeRegistryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) registryActor(w http.ResponseWriter, r *http.Request) (registryapp.Actor, bool) {
	caller, err := s.resolveIdentity(r)
	if err != nil {
		writeRegistryError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return registryapp.Actor{}, false
	}
	return registryapp.Actor{UserID: caller.UserID, Role: registryentities.Role(caller.Role)}, true
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	var req registryhttp.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateCourseHandler(r.Context(), actor, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	courseID, ok := pathID(w, r, "course_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.UpdateCourseHandler(r.Context(), actor, courseID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	courseID, ok := pathID(w, r, "course_id", writeRegistryError)
	if !ok {
		return
	}
	if err := s.registry.Handler.DeleteCourseHandler(r.Context(), actor, courseID); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "course_id", writeRegistryError)
	if !ok {
		return
	}
	resp, err := s.registry.Handler.GetCourseHandler(r.Context(), courseID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.registry.Handler.ListCoursesHandler(r.Context(), page)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	courseID, ok := pathID(w, r, "course_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateClassHandler(r.Context(), actor, courseID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.UpdateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.UpdateClassHandler(r.Context(), actor, classID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	if err := s.registry.Handler.DeleteClassHandler(r.Context(), actor, classID); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	resp, err := s.registry.Handler.GetClassHandler(r.Context(), classID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "course_id", writeRegistryError)
	if !ok {
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.registry.Handler.ListClassesHandler(r.Context(), courseID, page)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEnrollUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.EnrollUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.EnrollUserHandler(r.Context(), actor, classID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUnenrollUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id", writeRegistryError)
	if !ok {
		return
	}
	if err := s.registry.Handler.UnenrollUserHandler(r.Context(), actor, classID, userID); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetEnrollment(w http.ResponseWriter, r *http.Request) {
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id", writeRegistryError)
	if !ok {
		return
	}
	resp, err := s.registry.Handler.GetEnrollmentHandler(r.Context(), classID, userID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	classID, ok := pathID(w, r, "class_id", writeRegistryError)
	if !ok {
		return
	}
	page, err := parsePage(r)
	if err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.registry.Handler.ListEnrollmentsHandler(r.Context(), classID, page)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	var req registryhttp.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateRoomHandler(r.Context(), actor, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	roomID, ok := pathID(w, r, "room_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.UpdateRoomHandler(r.Context(), actor, roomID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	roomID, ok := pathID(w, r, "room_id", writeRegistryError)
	if !ok {
		return
	}
	if err := s.registry.Handler.DeleteRoomHandler(r.Context(), actor, roomID); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "room_id", writeRegistryError)
	if !ok {
		return
	}
	resp, err := s.registry.Handler.GetRoomHandler(r.Context(), roomID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.registry.Handler.ListRoomsHandler(r.Context(), page)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.UpdateUserHandler(r.Context(), actor, userID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.registryActor(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user_id", writeRegistryError)
	if !ok {
		return
	}
	var req registryhttp.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := registryhttp.Validate(req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	if err := s.registry.Handler.ResetPasswordHandler(r.Context(), actor, userID, req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id", writeRegistryError)
	if !ok {
		return
	}
	resp, err := s.registry.Handler.GetUserHandler(r.Context(), userID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_page", "page and size must be integers")
		return
	}
	resp, err := s.registry.Handler.ListUsersHandler(r.Context(), page)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
