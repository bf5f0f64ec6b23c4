package scheduling

import (
	"log/slog"

	httpadapter "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/adapters/http"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/adapters/memory"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application/commands"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/application/queries"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// Module is the scheduling-service composition root exposed to runtime
// wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Periods       ports.PeriodRepository
	Verifications ports.VerificationRepository
	Attendance    ports.AttendanceRepository
	Roster        ports.RosterDirectory
	Clock         ports.Clock
	Logger        *slog.Logger
}

// NewModule wires the scheduling use cases and transport handler.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreatePeriod: commands.CreatePeriodUseCase{Periods: deps.Periods, Roster: deps.Roster, Clock: deps.Clock, Logger: deps.Logger},
		UpdatePeriod: commands.UpdatePeriodUseCase{Periods: deps.Periods, Roster: deps.Roster, Clock: deps.Clock, Logger: deps.Logger},
		DeletePeriod: commands.DeletePeriodUseCase{Periods: deps.Periods, Logger: deps.Logger},
		GetPeriod:    queries.GetPeriodUseCase{Periods: deps.Periods, Logger: deps.Logger},
		ListPeriods:  queries.ListPeriodsUseCase{Periods: deps.Periods, Logger: deps.Logger},

		CreateVerification: commands.CreateVerificationUseCase{Verifications: deps.Verifications, Periods: deps.Periods, Roster: deps.Roster, Clock: deps.Clock, Logger: deps.Logger},
		UpdateVerification: commands.UpdateVerificationUseCase{Verifications: deps.Verifications, Periods: deps.Periods, Roster: deps.Roster, Clock: deps.Clock, Logger: deps.Logger},
		GetVerification:    queries.GetVerificationUseCase{Verifications: deps.Verifications, Logger: deps.Logger},

		RecordAttendance: commands.RecordAttendanceUseCase{Attendance: deps.Attendance, Periods: deps.Periods, Roster: deps.Roster, Clock: deps.Clock, Logger: deps.Logger},
		ListAttendance:   queries.ListAttendanceUseCase{Attendance: deps.Attendance, Periods: deps.Periods, Logger: deps.Logger},

		Logger: deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters. The roster directory still comes from outside so tests can back
// it with the registry's own in-memory store.
func NewInMemoryModule(roster ports.RosterDirectory, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Periods:       store,
		Verifications: store,
		Attendance:    store,
		Roster:        roster,
		Clock:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
