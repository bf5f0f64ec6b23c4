package queries

import (
	"context"
	"log/slog"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// GetRoomUseCase returns one room by id.
type GetRoomUseCase struct {
	Rooms  ports.RoomRepository
	Logger *slog.Logger
}

func (u GetRoomUseCase) Execute(ctx context.Context, roomID int64) (entities.Room, error) {
	return u.Rooms.FindRoomByID(ctx, roomID)
}

// RoomListResult is one page of rooms.
type RoomListResult struct {
	Items []entities.Room `json:"items"`
	Total int64           `json:"total"`
	Page  ports.Page      `json:"page"`
}

// ListRoomsUseCase returns a normalized page of rooms.
type ListRoomsUseCase struct {
	Rooms  ports.RoomRepository
	Logger *slog.Logger
}

func (u ListRoomsUseCase) Execute(ctx context.Context, page ports.Page) (RoomListResult, error) {
	page = page.Normalize()
	items, total, err := u.Rooms.ListRooms(ctx, page)
	if err != nil {
		return RoomListResult{}, err
	}
	return RoomListResult{Items: items, Total: total, Page: page}, nil
}
