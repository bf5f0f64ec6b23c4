package postgresadapter

import (
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
)

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		ID:           user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:       m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type courseModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name"`
	Acronym     string    `gorm:"column:acronym"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (courseModel) TableName() string { return "courses" }

func courseModelFromEntity(course entities.Course) courseModel {
	return courseModel{
		ID:          course.CourseID,
		Name:        course.Name,
		Acronym:     course.Acronym,
		Description: course.Description,
		CreatedAt:   course.CreatedAt.UTC(),
		UpdatedAt:   course.UpdatedAt.UTC(),
	}
}

func (m courseModel) toEntity() entities.Course {
	return entities.Course{
		CourseID:    m.ID,
		Name:        m.Name,
		Acronym:     m.Acronym,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type classModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CourseID   int64     `gorm:"column:course_id;uniqueIndex:ux_classes_course_number"`
	Number     int       `gorm:"column:number;uniqueIndex:ux_classes_course_number"`
	TotalHours int       `gorm:"column:total_hours"`
	Shift      string    `gorm:"column:shift"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (classModel) TableName() string { return "classes" }

func classModelFromEntity(class entities.Class) classModel {
	return classModel{
		ID:         class.ClassID,
		CourseID:   class.Key.CourseID,
		Number:     class.Key.Number,
		TotalHours: class.TotalHours,
		Shift:      string(class.Shift),
		CreatedAt:  class.CreatedAt.UTC(),
		UpdatedAt:  class.UpdatedAt.UTC(),
	}
}

func (m classModel) toEntity() entities.Class {
	return entities.Class{
		ClassID: m.ID,
		Key: entities.ClassKey{
			CourseID: m.CourseID,
			Number:   m.Number,
		},
		TotalHours: m.TotalHours,
		Shift:      entities.Shift(m.Shift),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type enrollmentModel struct {
	ClassID   int64     `gorm:"column:class_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:class_role"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (enrollmentModel) TableName() string { return "enrollments" }

func enrollmentModelFromEntity(enrollment entities.Enrollment) enrollmentModel {
	return enrollmentModel{
		ClassID:   enrollment.Key.ClassID,
		UserID:    enrollment.Key.UserID,
		Role:      string(enrollment.Role),
		CreatedAt: enrollment.CreatedAt.UTC(),
	}
}

func (m enrollmentModel) toEntity() entities.Enrollment {
	return entities.Enrollment{
		Key: entities.EnrollmentKey{
			ClassID: m.ClassID,
			UserID:  m.UserID,
		},
		Role:      entities.ClassRole(m.Role),
		CreatedAt: m.CreatedAt,
	}
}

type roomModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Number    int       `gorm:"column:number;uniqueIndex:ux_rooms_number"`
	Type      string    `gorm:"column:type"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func roomModelFromEntity(room entities.Room) roomModel {
	return roomModel{
		ID:        room.RoomID,
		Number:    room.Number,
		Type:      string(room.Type),
		CreatedAt: room.CreatedAt.UTC(),
		UpdatedAt: room.UpdatedAt.UTC(),
	}
}

func (m roomModel) toEntity() entities.Room {
	return entities.Room{
		RoomID:    m.ID,
		Number:    m.Number,
		Type:      entities.RoomType(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
