package models

// Friendship event kinds published to Kafka.
const (
	FriendshipEventSent     = "friend_request_sent"
	FriendshipEventAccepted = "friend_request_accepted"
	FriendshipEventDeclined = "friend_request_declined"
)

// FriendshipEvent is the message published when a friend request is sent or resolved.
type FriendshipEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Timestamp int64  `json:"timestamp"` // Unix timestamp (in seconds) when the event occurred
	Kind      string `json:"kind"`      // One of the FriendshipEvent* constants
	Requester string `json:"requester"` // Username of the request sender
	Recipient string `json:"recipient"` // Username of the request receiver
}
