package entities

import "time"

// VerificationForm is the report filled in after a session about the state
// the room was left in.
type VerificationForm struct {
	AllOrganized bool   `json:"all_organized"`
	Description  string `json:"description"`
	Observations string `json:"observations"`
	Ticket       string `json:"ticket"`
}

// RoomVerification is the post-session room report. At most one exists per
// period; the period_id unique constraint enforces it.
type RoomVerification struct {
	VerificationID int64            `json:"verification_id"`
	PeriodID       int64            `json:"period_id"`
	RegisteredAt   time.Time        `json:"registered_at"`
	Form           VerificationForm `json:"form"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
