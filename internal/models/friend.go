package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendDB represents one directed friendship row in the database.
// A mutual friendship is stored as two rows, one per direction,
// created together when a request is accepted.
type FriendDB struct {
	FriendID     uuid.UUID `json:"friend_id" db:"friend_id"`           // Primary key
	UserID       uuid.UUID `json:"user_id" db:"user_id"`               // Owning side of the edge
	FriendUserID uuid.UUID `json:"friend_user_id" db:"friend_user_id"` // The befriended user
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// FriendStatus is the friend-list projection: username plus live busy/free status.
type FriendStatus struct {
	Username string `json:"username" db:"username"`
	Status   bool   `json:"status" db:"status"`
}
