package httptransport

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation on a request DTO. Structural issues
// (blank names, out-of-range hours) are caught here, before the use case
// applies domain rules.
func Validate(request any) error {
	return validate.Struct(request)
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Acronym     string `json:"acronym" validate:"required,max=16"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Acronym     string `json:"acronym" validate:"required,max=16"`
	Description string `json:"description" validate:"max=2000"`
}

type CourseResponse struct {
	CourseID    int64     `json:"course_id"`
	Name        string    `json:"name"`
	Acronym     string    `json:"acronym"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CourseListResponse struct {
	Items      []CourseResponse `json:"items"`
	Total      int64            `json:"total"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
}

type CreateClassRequest struct {
	TotalHours int    `json:"total_hours" validate:"gte=0,lte=10000"`
	Shift      string `json:"shift" validate:"required"`
}

type UpdateClassRequest struct {
	TotalHours int    `json:"total_hours" validate:"gte=0,lte=10000"`
	Shift      string `json:"shift" validate:"required"`
}

type ClassResponse struct {
	ClassID    int64     `json:"class_id"`
	CourseID   int64     `json:"course_id"`
	Number     int       `json:"number"`
	TotalHours int       `json:"total_hours"`
	Shift      string    `json:"shift"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ClassListResponse struct {
	Items      []ClassResponse `json:"items"`
	Total      int64           `json:"total"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

type EnrollUserRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Role   string `json:"role" validate:"required"`
}

type EnrollmentResponse struct {
	ClassID   int64     `json:"class_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type EnrollmentListResponse struct {
	Items      []EnrollmentResponse `json:"items"`
	Total      int64                `json:"total"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
}

type CreateRoomRequest struct {
	Number int    `json:"number" validate:"required,gt=0"`
	Type   string `json:"type" validate:"required"`
}

type UpdateRoomRequest struct {
	Number int    `json:"number" validate:"required,gt=0"`
	Type   string `json:"type" validate:"required"`
}

type RoomResponse struct {
	RoomID    int64     `json:"room_id"`
	Number    int       `json:"number"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomListResponse struct {
	Items      []RoomResponse `json:"items"`
	Total      int64          `json:"total"`
	PageNumber int            `json:"page_number"`
	PageSize   int            `json:"page_size"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	PasswordHash string `json:"password_hash" validate:"required"`
}

type UserResponse struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int64          `json:"total"`
	PageNumber int            `json:"page_number"`
	PageSize   int            `json:"page_size"`
}
