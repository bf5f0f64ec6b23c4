package commands

import (
	"context"
	"log/slog"

	application "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/application"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/policies"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// CreateRoomCommand contains transport-agnostic input for room creation.
type CreateRoomCommand struct {
	Actor  application.Actor
	Number int
	Type   entities.RoomType
}

// CreateRoomUseCase checks room-number uniqueness before writing. The check
// is a fast-fail; the unique constraint on number in storage remains the
// authoritative guard and SaveRoom maps its rejection to ErrRoomNumberTaken.
type CreateRoomUseCase struct {
	Rooms    ports.RoomRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u CreateRoomUseCase) Execute(ctx context.Context, cmd CreateRoomCommand) (entities.Room, error) {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanCreate(policies.AggregateRoom, cmd.Actor.Role) {
		return entities.Room{}, domainerrors.ErrForbidden
	}
	if cmd.Number <= 0 {
		return entities.Room{}, domainerrors.ErrInvalidRoomNumber
	}
	if !entities.ValidRoomType(cmd.Type) {
		return entities.Room{}, domainerrors.ErrInvalidRoomType
	}

	taken, err := u.Rooms.RoomNumberExists(ctx, cmd.Number, 0)
	if err != nil {
		return entities.Room{}, err
	}
	if taken {
		return entities.Room{}, domainerrors.ErrRoomNumberTaken
	}

	now := u.Clock.Now()
	room, err := u.Rooms.SaveRoom(ctx, entities.Room{
		Number:    cmd.Number,
		Type:      cmd.Type,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Error("room create write failed",
			"event", "registry_room_create_write_failed",
			"module", "academics/registry-service",
			"layer", "application",
			"actor_id", cmd.Actor.UserID,
			"room_number", cmd.Number,
			"error", err.Error(),
		)
		return entities.Room{}, err
	}

	logger.Info("room created",
		"event", "registry_room_created",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"room_id", room.RoomID,
		"room_number", room.Number,
	)
	return room, nil
}

// UpdateRoomCommand contains transport-agnostic input for room edits.
type UpdateRoomCommand struct {
	Actor  application.Actor
	RoomID int64
	Number int
	Type   entities.RoomType
}

// UpdateRoomUseCase re-runs the number-uniqueness check excluding the room
// itself, so saving a room with its own number is not a conflict.
type UpdateRoomUseCase struct {
	Rooms    ports.RoomRepository
	Policies policies.Ruleset
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateRoomUseCase) Execute(ctx context.Context, cmd UpdateRoomCommand) (entities.Room, error) {
	if !u.Policies.CanEdit(policies.AggregateRoom, cmd.Actor.Role) {
		return entities.Room{}, domainerrors.ErrForbidden
	}
	if cmd.Number <= 0 {
		return entities.Room{}, domainerrors.ErrInvalidRoomNumber
	}
	if !entities.ValidRoomType(cmd.Type) {
		return entities.Room{}, domainerrors.ErrInvalidRoomType
	}

	room, err := u.Rooms.FindRoomByID(ctx, cmd.RoomID)
	if err != nil {
		return entities.Room{}, err
	}

	taken, err := u.Rooms.RoomNumberExists(ctx, cmd.Number, cmd.RoomID)
	if err != nil {
		return entities.Room{}, err
	}
	if taken {
		return entities.Room{}, domainerrors.ErrRoomNumberTaken
	}

	room.Number = cmd.Number
	room.Type = cmd.Type
	room.UpdatedAt = u.Clock.Now()

	return u.Rooms.SaveRoom(ctx, room)
}

// DeleteRoomCommand contains transport-agnostic input for room removal.
type DeleteRoomCommand struct {
	Actor  application.Actor
	RoomID int64
}

// DeleteRoomUseCase verifies existence and deletes the room, releasing its
// number for reuse.
type DeleteRoomUseCase struct {
	Rooms    ports.RoomRepository
	Policies policies.Ruleset
	Logger   *slog.Logger
}

func (u DeleteRoomUseCase) Execute(ctx context.Context, cmd DeleteRoomCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !u.Policies.CanDelete(policies.AggregateRoom, cmd.Actor.Role) {
		return domainerrors.ErrForbidden
	}

	exists, err := u.Rooms.RoomExists(ctx, cmd.RoomID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrRoomNotFound
	}

	if err := u.Rooms.DeleteRoom(ctx, cmd.RoomID); err != nil {
		return err
	}

	logger.Info("room deleted",
		"event", "registry_room_deleted",
		"module", "academics/registry-service",
		"layer", "application",
		"actor_id", cmd.Actor.UserID,
		"room_id", cmd.RoomID,
	)
	return nil
}
