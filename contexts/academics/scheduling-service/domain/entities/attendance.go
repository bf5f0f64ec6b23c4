package entities

import "time"

// Attendance records one user's presence in one period. The pair
// (period, user) is unique: re-recording updates the existing row.
type Attendance struct {
	AttendanceID int64     `json:"attendance_id"`
	PeriodID     int64     `json:"period_id"`
	UserID       int64     `json:"user_id"`
	IsPresent    bool      `json:"is_present"`
	RecordedAt   time.Time `json:"recorded_at"`
}
