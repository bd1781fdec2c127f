package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// ErrInvalidSchedule is returned when a schedule payload fails validation.
var ErrInvalidSchedule = errors.New("invalid schedule")

// ScheduleWriter defines availability write operations.
type ScheduleWriter interface {
	SaveSchedule(ctx context.Context, userID uuid.UUID, schedule []byte) error
	ToggleStatus(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ScheduleCache caches serialized schedules keyed by username.
type ScheduleCache interface {
	Get(ctx context.Context, username string) ([]byte, error)
	Set(ctx context.Context, username string, schedule []byte) error
	Delete(ctx context.Context, username string) error
}

// ScheduleService handles the weekly availability schedule and the
// busy/free status flag.
type ScheduleService struct {
	userReader UserReader
	writer     ScheduleWriter
	cache      ScheduleCache
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(userReader UserReader, writer ScheduleWriter, cache ScheduleCache) *ScheduleService {
	return &ScheduleService{
		userReader: userReader,
		writer:     writer,
		cache:      cache,
	}
}

// ValidateSchedule checks weekday keys and slot counts.
func ValidateSchedule(s models.Schedule) error {
	valid := make(map[string]bool, len(models.Weekdays))
	for _, d := range models.Weekdays {
		valid[d] = true
	}

	for day, slots := range s {
		if !valid[day] {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
		if len(slots) != models.SlotsPerDay {
			return fmt.Errorf("%w: %s has %d slots, want %d", ErrInvalidSchedule, day, len(slots), models.SlotsPerDay)
		}
	}

	return nil
}

func unmarshalSchedule(raw []byte) (models.Schedule, error) {
	schedule := models.Schedule{}
	if len(raw) == 0 {
		return schedule, nil
	}
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetOwn returns the caller's stored schedule.
func (s *ScheduleService) GetOwn(ctx context.Context, userID uuid.UUID) (models.Schedule, error) {
	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return unmarshalSchedule(user.Schedule)
}

// Update validates and overwrites the caller's schedule, dropping any
// cached copy so other users see the new version.
func (s *ScheduleService) Update(ctx context.Context, userID uuid.UUID, schedule models.Schedule) error {
	if err := ValidateSchedule(schedule); err != nil {
		return err
	}

	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	raw, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	if err := s.writer.SaveSchedule(ctx, userID, raw); err != nil {
		logger.Log.Errorw("failed to save schedule", "err", err)
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, user.Username); err != nil {
			logger.Log.Warnw("failed to invalidate schedule cache", "username", user.Username, "err", err)
		}
	}

	return nil
}

// GetByUsername returns any user's schedule, readable by any authenticated
// requester. Reads go through the cache; a miss falls back to the store
// and repopulates the cache.
func (s *ScheduleService) GetByUsername(ctx context.Context, username string) (models.Schedule, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, username); err == nil {
			if schedule, err := unmarshalSchedule(raw); err == nil {
				return schedule, nil
			}
			logger.Log.Warnw("dropping unreadable cached schedule", "username", username)
			_ = s.cache.Delete(ctx, username)
		}
	}

	user, err := s.userReader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	schedule, err := unmarshalSchedule(user.Schedule)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, username, user.Schedule); err != nil {
			logger.Log.Warnw("failed to cache schedule", "username", username, "err", err)
		}
	}

	return schedule, nil
}

// ToggleStatus flips the caller's busy/free flag and returns the new value.
func (s *ScheduleService) ToggleStatus(ctx context.Context, userID uuid.UUID) (bool, error) {
	status, err := s.writer.ToggleStatus(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to toggle status", "err", err)
		return false, err
	}
	return status, nil
}
