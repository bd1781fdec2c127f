package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// FriendReadRepository handles friendship read operations.
type FriendReadRepository struct {
	db *sqlx.DB
}

func NewFriendReadRepository(db *sqlx.DB) *FriendReadRepository {
	return &FriendReadRepository{db: db}
}

// ListByUserID returns the username and live status of every friend
// of the given user, ordered by username.
func (r *FriendReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FriendStatus, error) {
	const query = `
		SELECT u.username, u.status
		FROM friends f
		JOIN users u ON u.user_id = f.friend_user_id
		WHERE f.user_id = $1
		ORDER BY u.username
	`

	friends := []models.FriendStatus{}
	err := r.db.SelectContext(ctx, &friends, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(friends),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return friends, nil
}

// Exists reports whether a directed friend edge from userID to friendUserID exists.
func (r *FriendReadRepository) Exists(ctx context.Context, userID, friendUserID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM friends WHERE user_id = $1 AND friend_user_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, friendUserID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, friendUserID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// FriendWriteRepository handles friendship write operations.
type FriendWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFriendWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FriendWriteRepository {
	return &FriendWriteRepository{db: db, txGetter: txGetter}
}

func (r *FriendWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SavePair inserts both directed rows of a mutual friendship in one statement,
// so an accepted request either creates the full edge or nothing.
func (r *FriendWriteRepository) SavePair(ctx context.Context, userID, friendUserID uuid.UUID) error {
	const query = `
		INSERT INTO friends (friend_id, user_id, friend_user_id, created_at)
		VALUES ($1, $3, $4, NOW()), ($2, $4, $3, NOW())
	`
	args := []any{uuid.New(), uuid.New(), userID, friendUserID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, friendUserID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
