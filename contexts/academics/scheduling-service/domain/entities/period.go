package entities

import "time"

// Slot is the time-of-day a period occupies.
type Slot string

const (
	SlotMorning   Slot = "MORNING"
	SlotAfternoon Slot = "AFTERNOON"
	SlotEvening   Slot = "EVENING"
)

// ValidSlot reports whether s is one of the enumerated slots.
func ValidSlot(s Slot) bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// Period is one concrete scheduled session of a class: a teacher, a room, a
// class, a calendar date and a slot. It references its aggregates by id
// only; existence is checked at creation through the roster directory.
type Period struct {
	PeriodID  int64     `json:"period_id"`
	TeacherID int64     `json:"teacher_id"`
	RoomID    int64     `json:"room_id"`
	ClassID   int64     `json:"class_id"`
	Date      time.Time `json:"date"`
	Slot      Slot      `json:"slot"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
