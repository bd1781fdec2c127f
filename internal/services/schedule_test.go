package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/stretchr/testify/assert"
)

func fullWeekSchedule() models.Schedule {
	s := models.Schedule{}
	for _, day := range models.Weekdays {
		s[day] = make([]bool, models.SlotsPerDay)
	}
	s["monday"][9] = true
	return s
}

func TestValidateSchedule(t *testing.T) {
	t.Run("full week is valid", func(t *testing.T) {
		assert.NoError(t, ValidateSchedule(fullWeekSchedule()))
	})

	t.Run("partial week is valid", func(t *testing.T) {
		s := models.Schedule{"friday": make([]bool, models.SlotsPerDay)}
		assert.NoError(t, ValidateSchedule(s))
	})

	t.Run("empty schedule is valid", func(t *testing.T) {
		assert.NoError(t, ValidateSchedule(models.Schedule{}))
	})

	t.Run("unknown weekday", func(t *testing.T) {
		s := models.Schedule{"funday": make([]bool, models.SlotsPerDay)}
		assert.ErrorIs(t, ValidateSchedule(s), ErrInvalidSchedule)
	})

	t.Run("wrong slot count", func(t *testing.T) {
		s := models.Schedule{"monday": make([]bool, 12)}
		assert.ErrorIs(t, ValidateSchedule(s), ErrInvalidSchedule)
	})
}

func TestScheduleService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("saves and invalidates cache", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		writer := NewMockScheduleWriter(ctrl)
		cache := NewMockScheduleCache(ctrl)

		users.EXPECT().GetByID(ctx, userID).Return(user, nil)
		writer.EXPECT().SaveSchedule(ctx, userID, gomock.Any()).Return(nil)
		cache.EXPECT().Delete(ctx, "alice").Return(nil)

		svc := NewScheduleService(users, writer, cache)
		assert.NoError(t, svc.Update(ctx, userID, fullWeekSchedule()))
	})

	t.Run("invalid schedule is rejected before any write", func(t *testing.T) {
		svc := NewScheduleService(nil, nil, nil)
		s := models.Schedule{"monday": make([]bool, 3)}
		assert.ErrorIs(t, svc.Update(ctx, userID, s), ErrInvalidSchedule)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		users.EXPECT().GetByID(ctx, userID).Return(nil, nil)

		svc := NewScheduleService(users, nil, nil)
		assert.ErrorIs(t, svc.Update(ctx, userID, fullWeekSchedule()), ErrUserNotFound)
	})

	t.Run("cache invalidation failure does not fail the update", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		writer := NewMockScheduleWriter(ctrl)
		cache := NewMockScheduleCache(ctrl)

		users.EXPECT().GetByID(ctx, userID).Return(user, nil)
		writer.EXPECT().SaveSchedule(ctx, userID, gomock.Any()).Return(nil)
		cache.EXPECT().Delete(ctx, "alice").Return(errors.New("redis down"))

		svc := NewScheduleService(users, writer, cache)
		assert.NoError(t, svc.Update(ctx, userID, fullWeekSchedule()))
	})
}

func TestScheduleService_GetByUsername(t *testing.T) {
	ctx := context.Background()
	schedule := fullWeekSchedule()
	raw, _ := json.Marshal(schedule)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("cache hit skips the store", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		cache := NewMockScheduleCache(ctrl)

		cache.EXPECT().Get(ctx, "alice").Return(raw, nil)

		svc := NewScheduleService(users, nil, cache)
		got, err := svc.GetByUsername(ctx, "alice")

		assert.NoError(t, err)
		assert.Equal(t, schedule, got)
	})

	t.Run("cache miss falls back and repopulates", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		cache := NewMockScheduleCache(ctrl)

		cache.EXPECT().Get(ctx, "alice").Return(nil, errors.New("cache miss"))
		users.EXPECT().
			GetByUsernameOrEmail(ctx, gomock.Any(), nil).
			Return(&models.UserDB{UserID: uuid.New(), Username: "alice", Schedule: raw}, nil)
		cache.EXPECT().Set(ctx, "alice", []byte(raw)).Return(nil)

		svc := NewScheduleService(users, nil, cache)
		got, err := svc.GetByUsername(ctx, "alice")

		assert.NoError(t, err)
		assert.Equal(t, schedule, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		cache := NewMockScheduleCache(ctrl)

		cache.EXPECT().Get(ctx, "ghost").Return(nil, errors.New("cache miss"))
		users.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), nil).Return(nil, nil)

		svc := NewScheduleService(users, nil, cache)
		_, err := svc.GetByUsername(ctx, "ghost")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("works without a cache", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		users.EXPECT().
			GetByUsernameOrEmail(ctx, gomock.Any(), nil).
			Return(&models.UserDB{UserID: uuid.New(), Username: "alice", Schedule: raw}, nil)

		svc := NewScheduleService(users, nil, nil)
		got, err := svc.GetByUsername(ctx, "alice")

		assert.NoError(t, err)
		assert.Equal(t, schedule, got)
	})
}

func TestScheduleService_GetOwn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns stored schedule", func(t *testing.T) {
		schedule := fullWeekSchedule()
		raw, _ := json.Marshal(schedule)

		users := NewMockUserReader(ctrl)
		users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Schedule: raw}, nil)

		svc := NewScheduleService(users, nil, nil)
		got, err := svc.GetOwn(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, schedule, got)
	})

	t.Run("empty stored schedule decodes to empty map", func(t *testing.T) {
		users := NewMockUserReader(ctrl)
		users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)

		svc := NewScheduleService(users, nil, nil)
		got, err := svc.GetOwn(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, models.Schedule{}, got)
	})
}

func TestScheduleService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockScheduleWriter(ctrl)
	writer.EXPECT().ToggleStatus(ctx, userID).Return(false, nil)

	svc := NewScheduleService(nil, writer, nil)
	status, err := svc.ToggleStatus(ctx, userID)

	assert.NoError(t, err)
	assert.False(t, status)
}
