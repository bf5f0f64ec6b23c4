package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	registry "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service"
	registryports "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
	scheduling "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Luca5Eckert/SyncoApi-sub001/internal/platform/httpserver/docs"
)

const defaultPageSize = 20

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	jwtSecret  string
	registry   registry.Module
	scheduling scheduling.Module
}

func New(
	registryModule registry.Module,
	schedulingModule scheduling.Module,
	logger *slog.Logger,
	addr string,
	jwtSecret string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		jwtSecret:  jwtSecret,
		registry:   registryModule,
		scheduling: schedulingModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.withRequestID(s.mux))
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/registry/v1/courses", s.handleCreateCourse)
	s.mux.HandleFunc("GET /api/registry/v1/courses", s.handleListCourses)
	s.mux.HandleFunc("GET /api/registry/v1/courses/{course_id}", s.handleGetCourse)
	s.mux.HandleFunc("PUT /api/registry/v1/courses/{course_id}", s.handleUpdateCourse)
	s.mux.HandleFunc("DELETE /api/registry/v1/courses/{course_id}", s.handleDeleteCourse)

	s.mux.HandleFunc("POST /api/registry/v1/courses/{course_id}/classes", s.handleCreateClass)
	s.mux.HandleFunc("GET /api/registry/v1/courses/{course_id}/classes", s.handleListClasses)
	s.mux.HandleFunc("GET /api/registry/v1/classes/{class_id}", s.handleGetClass)
	s.mux.HandleFunc("PUT /api/registry/v1/classes/{class_id}", s.handleUpdateClass)
	s.mux.HandleFunc("DELETE /api/registry/v1/classes/{class_id}", s.handleDeleteClass)

	s.mux.HandleFunc("POST /api/registry/v1/classes/{class_id}/enrollments", s.handleEnrollUser)
	s.mux.HandleFunc("GET /api/registry/v1/classes/{class_id}/enrollments", s.handleListEnrollments)
	s.mux.HandleFunc("GET /api/registry/v1/classes/{class_id}/enrollments/{user_id}", s.handleGetEnrollment)
	s.mux.HandleFunc("DELETE /api/registry/v1/classes/{class_id}/enrollments/{user_id}", s.handleUnenrollUser)

	s.mux.HandleFunc("POST /api/registry/v1/rooms", s.handleCreateRoom)
	s.mux.HandleFunc("GET /api/registry/v1/rooms", s.handleListRooms)
	s.mux.HandleFunc("GET /api/registry/v1/rooms/{room_id}", s.handleGetRoom)
	s.mux.HandleFunc("PUT /api/registry/v1/rooms/{room_id}", s.handleUpdateRoom)
	s.mux.HandleFunc("DELETE /api/registry/v1/rooms/{room_id}", s.handleDeleteRoom)

	s.mux.HandleFunc("GET /api/registry/v1/users", s.handleListUsers)
	s.mux.HandleFunc("GET /api/registry/v1/users/{user_id}", s.handleGetUser)
	s.mux.HandleFunc("PUT /api/registry/v1/users/{user_id}", s.handleUpdateUser)
	s.mux.HandleFunc("POST /api/registry/v1/users/{user_id}/password", s.handleResetPassword)

	s.mux.HandleFunc("POST /api/scheduling/v1/periods", s.handleCreatePeriod)
	s.mux.HandleFunc("GET /api/scheduling/v1/periods", s.handleListPeriods)
	s.mux.HandleFunc("GET /api/scheduling/v1/periods/{period_id}", s.handleGetPeriod)
	s.mux.HandleFunc("PUT /api/scheduling/v1/periods/{period_id}", s.handleUpdatePeriod)
	s.mux.HandleFunc("DELETE /api/scheduling/v1/periods/{period_id}", s.handleDeletePeriod)

	s.mux.HandleFunc("POST /api/scheduling/v1/periods/{period_id}/verification", s.handleCreateVerification)
	s.mux.HandleFunc("GET /api/scheduling/v1/periods/{period_id}/verification", s.handleGetVerification)
	s.mux.HandleFunc("PUT /api/scheduling/v1/periods/{period_id}/verification", s.handleUpdateVerification)

	s.mux.HandleFunc("POST /api/scheduling/v1/periods/{period_id}/attendance", s.handleRecordAttendance)
	s.mux.HandleFunc("GET /api/scheduling/v1/periods/{period_id}/attendance", s.handleListAttendance)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// pathID parses a positive int64 path segment; ok is false after an error
// response has been written.
func pathID(w http.ResponseWriter, r *http.Request, name string, write func(http.ResponseWriter, int, string, string)) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		write(w, http.StatusBadRequest, "invalid_"+name, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func parsePage(r *http.Request) (registryports.Page, error) {
	page := registryports.Page{Size: defaultPageSize}
	query := r.URL.Query()
	if raw := query.Get("page"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			return page, err
		}
		page.Number = number
	}
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return page, err
		}
		page.Size = size
	}
	return page, nil
}
