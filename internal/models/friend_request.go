package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestDB represents an open friend request row.
// Only pending requests are stored; resolving a request deletes the row
// regardless of the accept or decline outcome.
type FriendRequestDB struct {
	RequestID   uuid.UUID `json:"request_id" db:"request_id"`   // Primary key
	RequesterID uuid.UUID `json:"requester_id" db:"requester_id"` // Sender
	RecipientID uuid.UUID `json:"recipient_id" db:"recipient_id"` // Receiver
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
