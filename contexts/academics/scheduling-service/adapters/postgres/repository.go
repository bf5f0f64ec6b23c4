package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/ports"
)

// Repository is the GORM-backed implementation of the scheduling ports. The
// unique constraint on room_verifications.period_id is the authoritative
// guard for the one-verification-per-period rule; its 23505 rejection is
// mapped to ErrVerificationExists here.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) SavePeriod(ctx context.Context, period entities.Period) (entities.Period, error) {
	row := periodModelFromEntity(period)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.Period{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindPeriodByID(ctx context.Context, periodID int64) (entities.Period, error) {
	var row periodModel
	err := r.db.WithContext(ctx).First(&row, periodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Period{}, domainerrors.ErrPeriodNotFound
		}
		return entities.Period{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) PeriodExists(ctx context.Context, periodID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&periodModel{}).
		Where("id = ?", periodID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) DeletePeriod(ctx context.Context, periodID int64) error {
	result := r.db.WithContext(ctx).Delete(&periodModel{}, periodID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPeriodNotFound
	}
	return nil
}

func (r *Repository) ListPeriods(ctx context.Context, filter ports.PeriodFilter, page ports.Page) ([]entities.Period, int64, error) {
	base := r.db.WithContext(ctx).Model(&periodModel{})
	// Compile the filter's predicate conjunction; absent fields add no
	// clause at all.
	for _, predicate := range filter.Predicates() {
		base = base.Where(fmt.Sprintf("%s = ?", predicate.Field), predicate.Value)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []periodModel
	err := base.
		Order("date ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Period, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) SaveVerification(ctx context.Context, verification entities.RoomVerification) (entities.RoomVerification, error) {
	row := verificationModelFromEntity(verification)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.RoomVerification{}, domainerrors.ErrVerificationExists
		}
		return entities.RoomVerification{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindVerificationByPeriod(ctx context.Context, periodID int64) (entities.RoomVerification, error) {
	var row verificationModel
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RoomVerification{}, domainerrors.ErrVerificationNotFound
		}
		return entities.RoomVerification{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) VerificationExistsForPeriod(ctx context.Context, periodID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&verificationModel{}).
		Where("period_id = ?", periodID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) SaveAttendance(ctx context.Context, attendance entities.Attendance) (entities.Attendance, error) {
	row := attendanceModelFromEntity(attendance)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "period_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_present", "recorded_at",
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return entities.Attendance{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAttendanceByPeriod(ctx context.Context, periodID int64, page ports.Page) ([]entities.Attendance, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&attendanceModel{}).
		Where("period_id = ?", periodID).
		Count(&total).
		Error
	if err != nil {
		return nil, 0, err
	}

	var rows []attendanceModel
	err = r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("user_id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Attendance, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
