package queries

import (
	"context"
	"log/slog"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// GetVerificationUseCase returns the room report filed for one period.
type GetVerificationUseCase struct {
	Verifications ports.VerificationRepository
	Logger        *slog.Logger
}

func (u GetVerificationUseCase) Execute(ctx context.Context, periodID int64) (entities.RoomVerification, error) {
	return u.Verifications.FindVerificationByPeriod(ctx, periodID)
}
