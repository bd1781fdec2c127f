package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database
type UserDB struct {
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`           // Primary key
	Username     string          `json:"username" db:"username"`         // Unique username
	Email        string          `json:"email" db:"email"`               // Unique email
	PasswordHash string          `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	Status       bool            `json:"status" db:"status"`             // true = free, false = busy
	Schedule     json.RawMessage `json:"schedule" db:"schedule"`         // Weekly availability, JSONB
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
