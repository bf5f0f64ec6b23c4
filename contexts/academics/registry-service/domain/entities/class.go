package entities

import "time"

// Shift is the time-of-day slot a class runs in.
type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
	ShiftEvening   Shift = "EVENING"
)

// ValidShift reports whether s is one of the enumerated shifts.
func ValidShift(s Shift) bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	}
	return false
}

// MaxTotalHours caps the workload a single class may carry.
const MaxTotalHours = 10000

// ClassKey is the composite identity of a class. Number is assigned
// sequentially per course, so it is unique only as a (course, number) pair.
type ClassKey struct {
	CourseID int64 `json:"course_id"`
	Number   int   `json:"number"`
}

// Class is one numbered offering of a course. ClassID is the storage handle
// other aggregates reference; Key carries the domain identity.
type Class struct {
	ClassID    int64     `json:"class_id"`
	Key        ClassKey  `json:"key"`
	TotalHours int       `json:"total_hours"`
	Shift      Shift     `json:"shift"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
