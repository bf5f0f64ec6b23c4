package queries

import (
	"context"
	"log/slog"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// GetUserUseCase returns one account by id.
type GetUserUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (u GetUserUseCase) Execute(ctx context.Context, userID int64) (entities.User, error) {
	return u.Users.FindUserByID(ctx, userID)
}

// UserListResult is one page of accounts.
type UserListResult struct {
	Items []entities.User `json:"items"`
	Total int64           `json:"total"`
	Page  ports.Page      `json:"page"`
}

// ListUsersUseCase returns a normalized page of accounts.
type ListUsersUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (u ListUsersUseCase) Execute(ctx context.Context, page ports.Page) (UserListResult, error) {
	page = page.Normalize()
	items, total, err := u.Users.ListUsers(ctx, page)
	if err != nil {
		return UserListResult{}, err
	}
	return UserListResult{Items: items, Total: total, Page: page}, nil
}
