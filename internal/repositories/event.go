package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// EventReadRepository handles event read operations.
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// ListByUserID returns all events owned by the user, ordered by date,
// start time, then id for a deterministic listing.
func (r *EventReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.EventDB, error) {
	const query = `
		SELECT event_id, user_id, title, description, event_date, start_time, end_time, created_at, updated_at
		FROM events
		WHERE user_id = $1
		ORDER BY event_date, start_time, event_id
	`

	events := []models.EventDB{}
	err := r.db.SelectContext(ctx, &events, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(events),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByIDAndUserID returns the event only when it belongs to the given user,
// or nil when no such row exists.
func (r *EventReadRepository) GetByIDAndUserID(ctx context.Context, eventID, userID uuid.UUID) (*models.EventDB, error) {
	const query = `
		SELECT event_id, user_id, title, description, event_date, start_time, end_time, created_at, updated_at
		FROM events
		WHERE event_id = $1 AND user_id = $2
	`

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, eventID, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// EventWriteRepository handles event write operations.
type EventWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEventWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EventWriteRepository {
	return &EventWriteRepository{db: db, txGetter: txGetter}
}

func (r *EventWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new event and returns its id.
func (r *EventWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, description, date, startTime, endTime string) (uuid.UUID, error) {
	const query = `
		INSERT INTO events (event_id, user_id, title, description, event_date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING event_id
	`
	eventID := uuid.New()

	var returned uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &returned, query,
		eventID, userID, title, description, date, startTime, endTime)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title, date, startTime, endTime},
		"result", returned,
		"error", err,
	)

	return returned, err
}

// Update modifies an event scoped to its owner and returns the number of
// rows changed; zero means the event is missing or owned by someone else.
func (r *EventWriteRepository) Update(ctx context.Context, eventID, userID uuid.UUID, title, description, date, startTime, endTime string) (int64, error) {
	const query = `
		UPDATE events
		SET title = $3, description = $4, event_date = $5, start_time = $6, end_time = $7, updated_at = NOW()
		WHERE event_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query,
		eventID, userID, title, description, date, startTime, endTime)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID, userID, title, date, startTime, endTime},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes an event scoped to its owner and returns the number of
// rows removed.
func (r *EventWriteRepository) Delete(ctx context.Context, eventID, userID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM events
		WHERE event_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, eventID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
