package httptransport

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation on a request DTO.
func Validate(request any) error {
	return validate.Struct(request)
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatePeriodRequest struct {
	TeacherID int64  `json:"teacher_id" validate:"required,gt=0"`
	RoomID    int64  `json:"room_id" validate:"required,gt=0"`
	ClassID   int64  `json:"class_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot      string `json:"slot" validate:"required"`
}

type UpdatePeriodRequest struct {
	TeacherID int64  `json:"teacher_id" validate:"required,gt=0"`
	RoomID    int64  `json:"room_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot      string `json:"slot" validate:"required"`
}

type PeriodResponse struct {
	PeriodID  int64     `json:"period_id"`
	TeacherID int64     `json:"teacher_id"`
	RoomID    int64     `json:"room_id"`
	ClassID   int64     `json:"class_id"`
	Date      string    `json:"date"`
	Slot      string    `json:"slot"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PeriodListResponse struct {
	Items      []PeriodResponse `json:"items"`
	Total      int64            `json:"total"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
}

type VerificationFormRequest struct {
	AllOrganized bool   `json:"all_organized"`
	Description  string `json:"description" validate:"required,max=2000"`
	Observations string `json:"observations" validate:"max=2000"`
	Ticket       string `json:"ticket" validate:"max=64"`
}

type VerificationResponse struct {
	VerificationID int64     `json:"verification_id"`
	PeriodID       int64     `json:"period_id"`
	RegisteredAt   time.Time `json:"registered_at"`
	AllOrganized   bool      `json:"all_organized"`
	Description    string    `json:"description"`
	Observations   string    `json:"observations"`
	Ticket         string    `json:"ticket"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RecordAttendanceRequest struct {
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	IsPresent bool  `json:"is_present"`
}

type AttendanceResponse struct {
	AttendanceID int64     `json:"attendance_id"`
	PeriodID     int64     `json:"period_id"`
	UserID       int64     `json:"user_id"`
	IsPresent    bool      `json:"is_present"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type AttendanceListResponse struct {
	Items      []AttendanceResponse `json:"items"`
	Total      int64                `json:"total"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
}
