package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// Error variables
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventDate = errors.New("event date must be MM/DD/YYYY")
	ErrInvalidEventTime = errors.New("event times must be HH:MM in 24-hour format")
)

// EventReader defines read operations for events.
type EventReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.EventDB, error)
	GetByIDAndUserID(ctx context.Context, eventID, userID uuid.UUID) (*models.EventDB, error)
}

// EventWriter defines write operations for events.
type EventWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, description, date, startTime, endTime string) (uuid.UUID, error)
	Update(ctx context.Context, eventID, userID uuid.UUID, title, description, date, startTime, endTime string) (int64, error)
	Delete(ctx context.Context, eventID, userID uuid.UUID) (int64, error)
}

// EventService handles per-user calendar event CRUD. Every operation is
// scoped to the owner, including delete.
type EventService struct {
	reader EventReader
	writer EventWriter
}

// NewEventService creates a new EventService.
func NewEventService(reader EventReader, writer EventWriter) *EventService {
	return &EventService{reader: reader, writer: writer}
}

// normalizeDate validates and canonicalizes an MM/DD/YYYY date string.
func normalizeDate(date string) (string, error) {
	t, err := time.Parse(models.EventDateLayout, date)
	if err != nil {
		return "", ErrInvalidEventDate
	}
	return t.Format(models.EventDateLayout), nil
}

// normalizeTime validates and canonicalizes a 24-hour HH:MM time string.
func normalizeTime(value string) (string, error) {
	t, err := time.Parse(models.EventTimeLayout, value)
	if err != nil {
		return "", ErrInvalidEventTime
	}
	return t.Format(models.EventTimeLayout), nil
}

// Create stores a new event owned by userID and returns its id.
func (s *EventService) Create(ctx context.Context, userID uuid.UUID, title, description, date, startTime, endTime string) (uuid.UUID, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return uuid.Nil, err
	}
	start, err := normalizeTime(startTime)
	if err != nil {
		return uuid.Nil, err
	}
	end, err := normalizeTime(endTime)
	if err != nil {
		return uuid.Nil, err
	}

	eventID, err := s.writer.Save(ctx, userID, title, description, date, start, end)
	if err != nil {
		logger.Log.Errorw("failed to save event", "err", err)
		return uuid.Nil, err
	}

	return eventID, nil
}

// List returns all events owned by userID in a deterministic order.
func (s *EventService) List(ctx context.Context, userID uuid.UUID) ([]models.EventDB, error) {
	return s.reader.ListByUserID(ctx, userID)
}

// Get returns a single event only when userID owns it.
func (s *EventService) Get(ctx context.Context, eventID, userID uuid.UUID) (*models.EventDB, error) {
	event, err := s.reader.GetByIDAndUserID(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Edit updates an event constrained to (id AND owner); editing a missing
// event or another user's event is reported as not found.
func (s *EventService) Edit(ctx context.Context, eventID, userID uuid.UUID, title, description, date, startTime, endTime string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}
	start, err := normalizeTime(startTime)
	if err != nil {
		return err
	}
	end, err := normalizeTime(endTime)
	if err != nil {
		return err
	}

	updated, err := s.writer.Update(ctx, eventID, userID, title, description, date, start, end)
	if err != nil {
		logger.Log.Errorw("failed to update event", "err", err)
		return err
	}
	if updated == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete removes an event constrained to (id AND owner), mirroring Edit.
func (s *EventService) Delete(ctx context.Context, eventID, userID uuid.UUID) error {
	deleted, err := s.writer.Delete(ctx, eventID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete event", "err", err)
		return err
	}
	if deleted == 0 {
		return ErrEventNotFound
	}

	return nil
}
