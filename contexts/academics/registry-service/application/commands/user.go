package commands

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// UpdateUserCommand contains transport-agnostic input for profile edits.
type UpdateUserCommand struct {
	Actor  application.Actor
	UserID int64
	Name   string
	Email  string
}

// UpdateUserUseCase checks the user policy and rewrites profile fields.
// Accounts are never hard-deleted, so there is no delete counterpart.
type UpdateUserUseCase struct {
	Users    ports.UserRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanEdit(policies.AggregateUser, cmd.Actor.Role) {
		return entities.User{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Email) == "" {
		return entities.User{}, domainerrors.ErrInvalidUserInput
	}

	user, err := u.Users.FindUserByID(ctx, cmd.UserID)
	if err != nil {
		return entities.User{}, err
	}

	user.Name = strings.TrimSpace(cmd.Name)
	user.Email = strings.TrimSpace(cmd.Email)
	user.UpdatedAt = u.Clock.Now()

	updated, err := u.Users.SaveUser(ctx, user)
	if err != nil {
		logger.Error("user update write failed",
			"event", "registry_user_update_write_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return entities.User{}, err
	}
	return updated, nil
}

// ResetPasswordCommand carries an already-hashed credential; hashing happens
// in the external auth flow before the core runs.
type ResetPasswordCommand struct {
	Actor        application.Actor
	UserID       int64
	PasswordHash string
}

// ResetPasswordUseCase stores a new opaque password hash for the account.
type ResetPasswordUseCase struct {
	Users    ports.UserRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanEdit(policies.AggregateUser, cmd.Actor.Role) {
		return domainerrors.ErrForbidden
	}
	if strings.TrimSpace(cmd.PasswordHash) == "" {
		return domainerrors.ErrInvalidUserInput
	}

	user, err := u.Users.FindUserByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	user.PasswordHash = cmd.PasswordHash
	user.UpdatedAt = u.Clock.Now()

	if _, err := u.Users.SaveUser(ctx, user); err != nil {
		return err
	}

	logger.Info("password reset",
		"event", "registry_password_reset",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"user_id", cmd.UserID,
	)
	return nil
}
