package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCannotBefriendSelf   = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends       = errors.New("users are already friends")
	ErrRequestAlreadyExists = errors.New("a friend request between these users is already pending")
	ErrRequestNotFound      = errors.New("friend request not found")
	ErrInvalidDecision      = errors.New("decision must be accept or decline")
)

// Friend request decisions.
const (
	DecisionAccept  = "accept"
	DecisionDecline = "decline"
)

// FriendReader defines read operations for friendship edges.
type FriendReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FriendStatus, error)
	Exists(ctx context.Context, userID, friendUserID uuid.UUID) (bool, error)
}

// FriendWriter defines write operations for friendship edges.
type FriendWriter interface {
	SavePair(ctx context.Context, userID, friendUserID uuid.UUID) error
}

// FriendRequestReader defines read operations for open friend requests.
type FriendRequestReader interface {
	ListRequesterUsernames(ctx context.Context, recipientID uuid.UUID) ([]string, error)
	ExistsBetween(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// FriendRequestWriter defines write operations for open friend requests.
type FriendRequestWriter interface {
	Save(ctx context.Context, requesterID, recipientID uuid.UUID) error
	Delete(ctx context.Context, requesterID, recipientID uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// FriendService handles the social graph: sending, listing, and resolving
// friend requests, and listing friendships.
type FriendService struct {
	userReader    UserReader
	friendReader  FriendReader
	friendWriter  FriendWriter
	requestReader FriendRequestReader
	requestWriter FriendRequestWriter
	kafkaWriter   KafkaWriter
}

// NewFriendService creates a new FriendService.
func NewFriendService(
	userReader UserReader,
	friendReader FriendReader,
	friendWriter FriendWriter,
	requestReader FriendRequestReader,
	requestWriter FriendRequestWriter,
	kafkaWriter KafkaWriter,
) *FriendService {
	return &FriendService{
		userReader:    userReader,
		friendReader:  friendReader,
		friendWriter:  friendWriter,
		requestReader: requestReader,
		requestWriter: requestWriter,
		kafkaWriter:   kafkaWriter,
	}
}

// publishFriendshipEvent publishes a friendship event to Kafka.
// Publishing is best effort and never fails the request.
func (s *FriendService) publishFriendshipEvent(ctx context.Context, kind, requester, recipient string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "kind", kind)
		return
	}

	event := models.FriendshipEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().Unix(),
		Kind:      kind,
		Requester: requester,
		Recipient: recipient,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal friendship event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish friendship event", "event_id", event.EventID, "error", err)
		return
	}

	logger.Log.Infow("friendship event published",
		"event_id", event.EventID,
		"kind", kind,
		"requester", requester,
		"recipient", recipient,
	)
}

// SendRequest creates an open friend request aimed at targetUsername.
// Requests to oneself, to unknown users, to existing friends, or duplicating
// a pending request in either direction are rejected without creating a row.
func (s *FriendService) SendRequest(ctx context.Context, requesterID uuid.UUID, targetUsername string) error {
	requester, err := s.userReader.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return ErrUserNotFound
	}

	target, err := s.userReader.GetByUsernameOrEmail(ctx, &targetUsername, nil)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.UserID == requesterID {
		return ErrCannotBefriendSelf
	}

	isFriend, err := s.friendReader.Exists(ctx, requesterID, target.UserID)
	if err != nil {
		return err
	}
	if isFriend {
		return ErrAlreadyFriends
	}

	pending, err := s.requestReader.ExistsBetween(ctx, requesterID, target.UserID)
	if err != nil {
		return err
	}
	if pending {
		return ErrRequestAlreadyExists
	}

	if err := s.requestWriter.Save(ctx, requesterID, target.UserID); err != nil {
		logger.Log.Errorw("failed to save friend request", "err", err)
		return err
	}

	s.publishFriendshipEvent(ctx, models.FriendshipEventSent, requester.Username, target.Username)
	return nil
}

// ListIncoming returns the usernames of everyone with an open request
// aimed at userID.
func (s *FriendService) ListIncoming(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.requestReader.ListRequesterUsernames(ctx, userID)
}

// Resolve accepts or declines the open request sent by requesterUsername
// to userID. The request row is deleted either way; accepting additionally
// creates both directed friendship rows. Declining a request that no longer
// exists is a no-op, while accepting one is reported as not found.
func (s *FriendService) Resolve(ctx context.Context, userID uuid.UUID, requesterUsername, decision string) error {
	if decision != DecisionAccept && decision != DecisionDecline {
		return ErrInvalidDecision
	}

	recipient, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if recipient == nil {
		return ErrUserNotFound
	}

	requester, err := s.userReader.GetByUsernameOrEmail(ctx, &requesterUsername, nil)
	if err != nil {
		return err
	}
	if requester == nil {
		return ErrUserNotFound
	}

	deleted, err := s.requestWriter.Delete(ctx, requester.UserID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete friend request", "err", err)
		return err
	}

	if decision == DecisionDecline {
		if deleted > 0 {
			s.publishFriendshipEvent(ctx, models.FriendshipEventDeclined, requester.Username, recipient.Username)
		}
		return nil
	}

	if deleted == 0 {
		return ErrRequestNotFound
	}

	if err := s.friendWriter.SavePair(ctx, userID, requester.UserID); err != nil {
		logger.Log.Errorw("failed to create friendship", "err", err)
		return err
	}

	s.publishFriendshipEvent(ctx, models.FriendshipEventAccepted, requester.Username, recipient.Username)
	return nil
}

// ListFriends returns the username and live status of every friend of userID.
func (s *FriendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]models.FriendStatus, error) {
	return s.friendReader.ListByUserID(ctx, userID)
}
