package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventWriteRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewEventWriteRepository(db, nil)
	readRepo := NewEventReadRepository(db)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice")

	eventID, err := writeRepo.Save(ctx, aliceID, "Dinner", "Birthday dinner", "12/25/2025", "18:00", "21:00")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, eventID)

	event, err := readRepo.GetByIDAndUserID(ctx, eventID, aliceID)
	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, "Dinner", event.Title)
	assert.Equal(t, "12/25/2025", event.Date)
	assert.Equal(t, "18:00", event.StartTime)
	assert.Equal(t, "21:00", event.EndTime)
}

func TestEventReadRepository_GetByIDAndUserID_OwnerScoped(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewEventWriteRepository(db, nil)
	readRepo := NewEventReadRepository(db)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice")
	bobID := createTestUser(t, db, "bob")

	eventID, err := writeRepo.Save(ctx, aliceID, "Dinner", "", "12/25/2025", "18:00", "21:00")
	assert.NoError(t, err)

	// bob cannot see alice's event
	event, err := readRepo.GetByIDAndUserID(ctx, eventID, bobID)
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestEventReadRepository_ListByUserID_Ordering(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewEventWriteRepository(db, nil)
	readRepo := NewEventReadRepository(db)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice")

	_, err := writeRepo.Save(ctx, aliceID, "Late", "", "12/25/2025", "18:00", "21:00")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, aliceID, "Early", "", "12/24/2025", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, aliceID, "Midday", "", "12/25/2025", "12:00", "13:00")
	assert.NoError(t, err)

	events, err := readRepo.ListByUserID(ctx, aliceID)
	assert.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, "Early", events[0].Title)
	assert.Equal(t, "Midday", events[1].Title)
	assert.Equal(t, "Late", events[2].Title)
}

func TestEventWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewEventWriteRepository(db, nil)
	readRepo := NewEventReadRepository(db)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice")
	bobID := createTestUser(t, db, "bob")

	eventID, err := writeRepo.Save(ctx, aliceID, "Dinner", "", "12/25/2025", "18:00", "21:00")
	assert.NoError(t, err)

	t.Run("OwnerCanUpdate", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, eventID, aliceID, "Dinner", "", "12/25/2025", "18:00", "22:00")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), updated)

		event, err := readRepo.GetByIDAndUserID(ctx, eventID, aliceID)
		assert.NoError(t, err)
		assert.Equal(t, "22:00", event.EndTime)
	})

	t.Run("OtherUserCannotUpdate", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, eventID, bobID, "Hijacked", "", "12/25/2025", "18:00", "22:00")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), updated)
	})
}

func TestEventWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewEventWriteRepository(db, nil)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice")
	bobID := createTestUser(t, db, "bob")

	eventID, err := writeRepo.Save(ctx, aliceID, "Dinner", "", "12/25/2025", "18:00", "21:00")
	assert.NoError(t, err)

	t.Run("OtherUserCannotDelete", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, eventID, bobID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("OwnerCanDelete", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, eventID, aliceID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("AlreadyGone", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, eventID, aliceID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
