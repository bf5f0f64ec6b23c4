package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	registry "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service"
	registrypostgres "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/adapters/postgres"
	scheduling "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service"
	schedulingpostgres "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/adapters/postgres"
	registryadapter "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/adapters/registry"
	"github.com/Luca5Eckert/SyncoApi-sub001/internal/platform/config"
	"github.com/Luca5Eckert/SyncoApi-sub001/internal/platform/db"
	"github.com/Luca5Eckert/SyncoApi-sub001/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(cfg.MigrationsDir); err != nil {
		_ = pg.Close()
		return nil, err
	}

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	registryModule := registry.NewModule(registry.Dependencies{
		Users:       registryRepo,
		Courses:     registryRepo,
		Classes:     registryRepo,
		Enrollments: registryRepo,
		Rooms:       registryRepo,
		Clock:       registrypostgres.SystemClock{},
		Logger:      logger,
	})

	schedulingRepo := schedulingpostgres.NewRepository(pg.DB, logger)
	schedulingModule := scheduling.NewModule(scheduling.Dependencies{
		Periods:       schedulingRepo,
		Verifications: schedulingRepo,
		Attendance:    schedulingRepo,
		Roster: registryadapter.Directory{
			Users:       registryRepo,
			Rooms:       registryRepo,
			Classes:     registryRepo,
			Enrollments: registryRepo,
		},
		Clock:  schedulingpostgres.SystemClock{},
		Logger: logger,
	})

	server := httpserver.New(
		registryModule,
		schedulingModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
		cfg.AuthJWTSecret,
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
