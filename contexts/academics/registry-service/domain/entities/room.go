package entities

import "time"

// RoomType classifies the physical space.
type RoomType string

const (
	RoomTypeClassroom  RoomType = "CLASSROOM"
	RoomTypeLaboratory RoomType = "LABORATORY"
	RoomTypeAuditorium RoomType = "AUDITORIUM"
	RoomTypeLibrary    RoomType = "LIBRARY"
)

// ValidRoomType reports whether t is one of the enumerated room types.
func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomTypeClassroom, RoomTypeLaboratory, RoomTypeAuditorium, RoomTypeLibrary:
		return true
	}
	return false
}

// Room is a physical space. Number is unique across all active rooms; a
// deleted room's number may be reused.
type Room struct {
	RoomID    int64     `json:"room_id"`
	Number    int       `json:"number"`
	Type      RoomType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
