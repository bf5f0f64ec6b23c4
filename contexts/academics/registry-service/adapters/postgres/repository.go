package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
	domainerrors "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/errors"
	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/ports"
)

// Repository is the GORM-backed implementation of the registry ports. The
// schema's unique constraints (rooms.number, classes (course_id, number),
// enrollments (class_id, user_id)) are the authoritative guard for the
// check-then-act invariants; 23505 rejections are mapped to the matching
// domain conflicts here.
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

func (r *Repository) SaveUser(ctx context.Context, user entities.User) (entities.User, error) {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindUserByID(ctx context.Context, userID int64) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).First(&row, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UserExists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", userID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) ListUsers(ctx context.Context, page ports.Page) ([]entities.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) SaveCourse(ctx context.Context, course entities.Course) (entities.Course, error) {
	row := courseModelFromEntity(course)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.Course{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindCourseByID(ctx context.Context, courseID int64) (entities.Course, error) {
	var row courseModel
	err := r.db.WithContext(ctx).First(&row, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Course{}, domainerrors.ErrCourseNotFound
		}
		return entities.Course{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CourseExists(ctx context.Context, courseID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&courseModel{}).
		Where("id = ?", courseID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) DeleteCourse(ctx context.Context, courseID int64) error {
	result := r.db.WithContext(ctx).Delete(&courseModel{}, courseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCourseNotFound
	}
	return nil
}

func (r *Repository) ListCourses(ctx context.Context, page ports.Page) ([]entities.Course, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&courseModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []courseModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Course, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) SaveClass(ctx context.Context, class entities.Class) (entities.Class, error) {
	row := classModelFromEntity(class)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Class{}, domainerrors.ErrClassNumberTaken
		}
		return entities.Class{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindClassByID(ctx context.Context, classID int64) (entities.Class, error) {
	var row classModel
	err := r.db.WithContext(ctx).First(&row, classID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Class{}, domainerrors.ErrClassNotFound
		}
		return entities.Class{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ClassExists(ctx context.Context, classID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&classModel{}).
		Where("id = ?", classID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) MaxClassNumber(ctx context.Context, courseID int64) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&classModel{}).
		Where("course_id = ?", courseID).
		Select("MAX(number)").
		Scan(&max).
		Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *Repository) DeleteClass(ctx context.Context, classID int64) error {
	result := r.db.WithContext(ctx).Delete(&classModel{}, classID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrClassNotFound
	}
	return nil
}

func (r *Repository) ListClasses(ctx context.Context, courseID int64, page ports.Page) ([]entities.Class, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&classModel{}).
		Where("course_id = ?", courseID).
		Count(&total).
		Error
	if err != nil {
		return nil, 0, err
	}

	var rows []classModel
	err = r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("number ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Class, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) SaveEnrollment(ctx context.Context, enrollment entities.Enrollment) (entities.Enrollment, error) {
	row := enrollmentModelFromEntity(enrollment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Enrollment{}, domainerrors.ErrEnrollmentExists
		}
		return entities.Enrollment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindEnrollment(ctx context.Context, key entities.EnrollmentKey) (entities.Enrollment, error) {
	var row enrollmentModel
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ?", key.ClassID, key.UserID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Enrollment{}, domainerrors.ErrEnrollmentNotFound
		}
		return entities.Enrollment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteEnrollment(ctx context.Context, key entities.EnrollmentKey) error {
	result := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ?", key.ClassID, key.UserID).
		Delete(&enrollmentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEnrollmentNotFound
	}
	return nil
}

func (r *Repository) ListEnrollmentsByClass(ctx context.Context, classID int64, page ports.Page) ([]entities.Enrollment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&enrollmentModel{}).
		Where("class_id = ?", classID).
		Count(&total).
		Error
	if err != nil {
		return nil, 0, err
	}

	var rows []enrollmentModel
	err = r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("user_id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Enrollment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) SaveRoom(ctx context.Context, room entities.Room) (entities.Room, error) {
	row := roomModelFromEntity(room)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Room{}, domainerrors.ErrRoomNumberTaken
		}
		return entities.Room{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindRoomByID(ctx context.Context, roomID int64) (entities.Room, error) {
	var row roomModel
	err := r.db.WithContext(ctx).First(&row, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Room{}, domainerrors.ErrRoomNotFound
		}
		return entities.Room{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", roomID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) RoomNumberExists(ctx context.Context, number int, excludeRoomID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("number = ? AND id <> ?", number, excludeRoomID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *Repository) DeleteRoom(ctx context.Context, roomID int64) error {
	result := r.db.WithContext(ctx).Delete(&roomModel{}, roomID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRoomNotFound
	}
	return nil
}

func (r *Repository) ListRooms(ctx context.Context, page ports.Page) ([]entities.Room, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&roomModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []roomModel
	err := r.db.WithContext(ctx).
		Order("number ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Room, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
