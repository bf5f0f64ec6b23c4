package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	registry "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service"
	registryentities "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	scheduling "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service"
	registryadapter "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/adapters/registry"

	"github.com/golang-jwt/jwt/v4"
)

const testJWTSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, registry.Module, scheduling.Module) {
	t.Helper()
	registryModule := registry.NewInMemoryModule(nil)
	schedulingModule := scheduling.NewInMemoryModule(registryadapter.Directory{
		Users:       registryModule.Store,
		Rooms:       registryModule.Store,
		Classes:     registryModule.Store,
		Enrollments: registryModule.Store,
	}, nil)
	server := New(registryModule, schedulingModule, nil, ":0", testJWTSecret)
	return server, registryModule, schedulingModule
}

func doJSON(t *testing.T, server *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, req)
	return recorder
}

func adminHeaders() map[string]string {
	return map[string]string{"X-User-Id": "1", "X-User-Role": "ADMIN"}
}

func TestMutationRequiresCredentials(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"Systems Analysis","acronym":"SA"}`, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestMutationForbiddenForPlainUser(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"Systems Analysis","acronym":"SA"}`,
		map[string]string{"X-User-Id": "2", "X-User-Role": "USER"})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.Code)
	}
}

func TestCourseAndClassLifecycle(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"Systems Analysis","acronym":"SA"}`, adminHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("create course: status = %d body=%s", resp.Code, resp.Body.String())
	}
	var course struct {
		CourseID int64 `json:"course_id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &course); err != nil {
		t.Fatalf("decode course: %v", err)
	}

	resp = doJSON(t, server, http.MethodPost, "/api/registry/v1/courses/1/classes",
		`{"total_hours":800,"shift":"MORNING"}`, adminHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("create class: status = %d body=%s", resp.Code, resp.Body.String())
	}
	var class struct {
		Number int `json:"number"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &class); err != nil {
		t.Fatalf("decode class: %v", err)
	}
	if class.Number != 1 {
		t.Fatalf("first class number = %d, want 1", class.Number)
	}

	// Reads need no credentials.
	resp = doJSON(t, server, http.MethodGet, "/api/registry/v1/courses/1", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get course: status = %d", resp.Code)
	}

	resp = doJSON(t, server, http.MethodGet, "/api/registry/v1/courses/999", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("missing course: status = %d, want 404", resp.Code)
	}
}

func TestRoomNumberConflictMapsTo409(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/registry/v1/rooms",
		`{"number":101,"type":"CLASSROOM"}`, adminHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("create room: status = %d body=%s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, http.MethodPost, "/api/registry/v1/rooms",
		`{"number":101,"type":"LABORATORY"}`, adminHeaders())
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate room: status = %d, want 409", resp.Code)
	}
}

func TestInvalidPayloadMapsTo400(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"","acronym":""}`, adminHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("blank course: status = %d, want 400", resp.Code)
	}

	resp = doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{not json`, adminHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("broken json: status = %d, want 400", resp.Code)
	}
}

func TestVerificationFlowOverHTTP(t *testing.T) {
	server, registryModule, _ := newTestServer(t)

	// Seed the roster directly; user provisioning is outside this API.
	if _, err := registryModule.Store.SaveUser(context.Background(), registryentities.User{
		Name:  "Ana",
		Email: "ana@example.edu",
		Role:  registryentities.RoleUser,
	}); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	if _, err := registryModule.Store.SaveUser(context.Background(), registryentities.User{
		Name:  "Bia",
		Email: "bia@example.edu",
		Role:  registryentities.RoleUser,
	}); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"Systems Analysis","acronym":"SA"}`, adminHeaders())
	doJSON(t, server, http.MethodPost, "/api/registry/v1/courses/1/classes",
		`{"total_hours":800,"shift":"MORNING"}`, adminHeaders())
	doJSON(t, server, http.MethodPost, "/api/registry/v1/rooms",
		`{"number":101,"type":"CLASSROOM"}`, adminHeaders())
	doJSON(t, server, http.MethodPost, "/api/registry/v1/classes/1/enrollments",
		`{"user_id":1,"role":"TEACHER"}`, adminHeaders())
	doJSON(t, server, http.MethodPost, "/api/registry/v1/classes/1/enrollments",
		`{"user_id":2,"role":"STUDENT"}`, adminHeaders())

	resp := doJSON(t, server, http.MethodPost, "/api/scheduling/v1/periods",
		`{"teacher_id":1,"room_id":1,"class_id":1,"date":"2026-03-09","slot":"MORNING"}`, adminHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("create period: status = %d body=%s", resp.Code, resp.Body.String())
	}

	teacherHeaders := map[string]string{"X-User-Id": "1", "X-User-Role": "USER"}
	studentHeaders := map[string]string{"X-User-Id": "2", "X-User-Role": "USER"}

	resp = doJSON(t, server, http.MethodPost, "/api/scheduling/v1/periods/1/verification",
		`{"all_organized":true,"description":"room in order"}`, studentHeaders)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("student verification: status = %d, want 403", resp.Code)
	}

	resp = doJSON(t, server, http.MethodPost, "/api/scheduling/v1/periods/1/verification",
		`{"all_organized":true,"description":"room in order"}`, teacherHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("teacher verification: status = %d body=%s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, http.MethodPost, "/api/scheduling/v1/periods/1/verification",
		`{"all_organized":false,"description":"second report"}`, teacherHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate verification: status = %d, want 409", resp.Code)
	}

	resp = doJSON(t, server, http.MethodPost, "/api/scheduling/v1/periods/1/attendance",
		`{"user_id":2,"is_present":true}`, teacherHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("record attendance: status = %d body=%s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, http.MethodGet, "/api/scheduling/v1/periods?room_id=1&slot=MORNING", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list periods: status = %d", resp.Code)
	}
	var list struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("filtered total = %d, want 1", list.Total)
	}
}

func TestBearerTokenIdentity(t *testing.T) {
	server, _, _ := newTestServer(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "1",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	resp := doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"Systems Analysis","acronym":"SA"}`,
		map[string]string{"Authorization": "Bearer " + signed})
	if resp.Code != http.StatusCreated {
		t.Fatalf("bearer admin create: status = %d body=%s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, server, http.MethodPost, "/api/registry/v1/courses",
		`{"name":"Systems Analysis","acronym":"SA"}`,
		map[string]string{"Authorization": "Bearer not-a-token"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("garbage bearer: status = %d, want 401", resp.Code)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doJSON(t, server, http.MethodGet, "/api/registry/v1/courses", "", nil)
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected generated X-Request-Id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/registry/v1/courses", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, req)
	if got := recorder.Header().Get("X-Request-Id"); got != "fixed-id" {
		t.Fatalf("request id = %q, want caller-provided value echoed", got)
	}
}
