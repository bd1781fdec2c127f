package models

import (
	"time"

	"github.com/google/uuid"
)

// Stored formats for event date and time fields.
const (
	EventDateLayout = "01/02/2006" // MM/DD/YYYY
	EventTimeLayout = "15:04"      // HH:MM, 24-hour
)

// EventDB represents a calendar event row owned by exactly one user.
type EventDB struct {
	EventID     uuid.UUID `json:"event_id" db:"event_id"`       // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owner
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"event_date"`         // MM/DD/YYYY
	StartTime   string    `json:"start_time" db:"start_time"`   // HH:MM
	EndTime     string    `json:"end_time" db:"end_time"`       // HH:MM
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
