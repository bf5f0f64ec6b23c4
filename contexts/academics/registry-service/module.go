package registry

import (
	"log/slog"

	httpadapter "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/adapters/http"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/adapters/memory"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application/commands"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application/queries"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// Module is the registry-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users       ports.UserRepository
	Courses     ports.CourseRepository
	Classes     ports.ClassRepository
	Enrollments ports.EnrollmentRepository
	Rooms       ports.RoomRepository
	Clock       ports.Clock
	Policies    policies.Ruleset
	Logger      *slog.Logger
}

// NewModule wires the registry use cases and transport handler.
func NewModule(deps Dependencies) Module {
	if deps.Policies == nil {
		deps.Policies = policies.Default()
	}

	handler := httpadapter.Handler{
		CreateCourse: commands.CreateCourseUseCase{Courses: deps.Courses, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		UpdateCourse: commands.UpdateCourseUseCase{Courses: deps.Courses, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		DeleteCourse: commands.DeleteCourseUseCase{Courses: deps.Courses, Policies: deps.Policies, Logger: deps.Logger},
		GetCourse:    queries.GetCourseUseCase{Courses: deps.Courses, Logger: deps.Logger},
		ListCourses:  queries.ListCoursesUseCase{Courses: deps.Courses, Logger: deps.Logger},

		CreateClass: commands.CreateClassUseCase{Classes: deps.Classes, Courses: deps.Courses, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		UpdateClass: commands.UpdateClassUseCase{Classes: deps.Classes, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		DeleteClass: commands.DeleteClassUseCase{Classes: deps.Classes, Policies: deps.Policies, Logger: deps.Logger},
		GetClass:    queries.GetClassUseCase{Classes: deps.Classes, Logger: deps.Logger},
		ListClasses: queries.ListClassesUseCase{Classes: deps.Classes, Logger: deps.Logger},

		EnrollUser:      commands.EnrollUserUseCase{Enrollments: deps.Enrollments, Classes: deps.Classes, Users: deps.Users, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		UnenrollUser:    commands.UnenrollUserUseCase{Enrollments: deps.Enrollments, Policies: deps.Policies, Logger: deps.Logger},
		GetEnrollment:   queries.GetEnrollmentUseCase{Enrollments: deps.Enrollments, Logger: deps.Logger},
		ListEnrollments: queries.ListEnrollmentsUseCase{Enrollments: deps.Enrollments, Logger: deps.Logger},

		CreateRoom: commands.CreateRoomUseCase{Rooms: deps.Rooms, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		UpdateRoom: commands.UpdateRoomUseCase{Rooms: deps.Rooms, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		DeleteRoom: commands.DeleteRoomUseCase{Rooms: deps.Rooms, Policies: deps.Policies, Logger: deps.Logger},
		GetRoom:    queries.GetRoomUseCase{Rooms: deps.Rooms, Logger: deps.Logger},
		ListRooms:  queries.ListRoomsUseCase{Rooms: deps.Rooms, Logger: deps.Logger},

		UpdateUser:    commands.UpdateUserUseCase{Users: deps.Users, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		ResetPassword: commands.ResetPasswordUseCase{Users: deps.Users, Policies: deps.Policies, Clock: deps.Clock, Logger: deps.Logger},
		GetUser:       queries.GetUserUseCase{Users: deps.Users, Logger: deps.Logger},
		ListUsers:     queries.ListUsersUseCase{Users: deps.Users, Logger: deps.Logger},

		Logger: deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// adapter backing every repository port.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:       store,
		Courses:     store,
		Classes:     store,
		Enrollments: store,
		Rooms:       store,
		Clock:       store,
		Policies:    policies.Default(),
		Logger:      logger,
	})
	module.Store = store
	return module
}
