package postgresadapter

import (
	"time"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"
)

type periodModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TeacherID int64     `gorm:"column:teacher_id"`
	RoomID    int64     `gorm:"column:room_id"`
	ClassID   int64     `gorm:"column:class_id"`
	Date      time.Time `gorm:"column:date"`
	Slot      string    `gorm:"column:slot"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (periodModel) TableName() string { return "periods" }

func periodModelFromEntity(period entities.Period) periodModel {
	return periodModel{
		ID:        period.PeriodID,
		TeacherID: period.TeacherID,
		RoomID:    period.RoomID,
		ClassID:   period.ClassID,
		Date:      period.Date.UTC(),
		Slot:      string(period.Slot),
		CreatedAt: period.CreatedAt.UTC(),
		UpdatedAt: period.UpdatedAt.UTC(),
	}
}

func (m periodModel) toEntity() entities.Period {
	return entities.Period{
		PeriodID:  m.ID,
		TeacherID: m.TeacherID,
		RoomID:    m.RoomID,
		ClassID:   m.ClassID,
		Date:      m.Date,
		Slot:      entities.Slot(m.Slot),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type verificationModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PeriodID     int64     `gorm:"column:period_id;uniqueIndex:ux_room_verifications_period"`
	RegisteredAt time.Time `gorm:"column:registered_at"`
	AllOrganized bool      `gorm:"column:all_organized"`
	Description  string    `gorm:"column:description"`
	Observations string    `gorm:"column:observations"`
	Ticket       string    `gorm:"column:ticket"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (verificationModel) TableName() string { return "room_verifications" }

func verificationModelFromEntity(verification entities.RoomVerification) verificationModel {
	return verificationModel{
		ID:           verification.VerificationID,
		PeriodID:     verification.PeriodID,
		RegisteredAt: verification.RegisteredAt.UTC(),
		AllOrganized: verification.Form.AllOrganized,
		Description:  verification.Form.Description,
		Observations: verification.Form.Observations,
		Ticket:       verification.Form.Ticket,
		UpdatedAt:    verification.UpdatedAt.UTC(),
	}
}

func (m verificationModel) toEntity() entities.RoomVerification {
	return entities.RoomVerification{
		VerificationID: m.ID,
		PeriodID:       m.PeriodID,
		RegisteredAt:   m.RegisteredAt,
		Form: entities.VerificationForm{
			AllOrganized: m.AllOrganized,
			Description:  m.Description,
			Observations: m.Observations,
			Ticket:       m.Ticket,
		},
		UpdatedAt: m.UpdatedAt,
	}
}

type attendanceModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PeriodID   int64     `gorm:"column:period_id;uniqueIndex:ux_attendance_period_user"`
	UserID     int64     `gorm:"column:user_id;uniqueIndex:ux_attendance_period_user"`
	IsPresent  bool      `gorm:"column:is_present"`
	RecordedAt time.Time `gorm:"column:recorded_at"`
}

func (attendanceModel) TableName() string { return "attendance" }

func attendanceModelFromEntity(attendance entities.Attendance) attendanceModel {
	return attendanceModel{
		ID:         attendance.AttendanceID,
		PeriodID:   attendance.PeriodID,
		UserID:     attendance.UserID,
		IsPresent:  attendance.IsPresent,
		RecordedAt: attendance.RecordedAt.UTC(),
	}
}

func (m attendanceModel) toEntity() entities.Attendance {
	return entities.Attendance{
		AttendanceID: m.ID,
		PeriodID:     m.PeriodID,
		UserID:       m.UserID,
		IsPresent:    m.IsPresent,
		RecordedAt:   m.RecordedAt,
	}
}
