package entities

import "time"

// Course groups classes under one curriculum entry.
type Course struct {
	CourseID    int64     `json:"course_id"`
	Name        string    `json:"name"`
	Acronym     string    `json:"acronym"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
