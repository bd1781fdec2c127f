package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/psokolova/meetsync/internal/logger"
)

// FriendRequestReadRepository handles friend-request read operations.
type FriendRequestReadRepository struct {
	db *sqlx.DB
}

func NewFriendRequestReadRepository(db *sqlx.DB) *FriendRequestReadRepository {
	return &FriendRequestReadRepository{db: db}
}

// ListRequesterUsernames returns the usernames of all users with an open
// request aimed at the given recipient, oldest first.
func (r *FriendRequestReadRepository) ListRequesterUsernames(ctx context.Context, recipientID uuid.UUID) ([]string, error) {
	const query = `
		SELECT u.username
		FROM friend_requests fr
		JOIN users u ON u.user_id = fr.requester_id
		WHERE fr.recipient_id = $1
		ORDER BY fr.created_at
	`

	usernames := []string{}
	err := r.db.SelectContext(ctx, &usernames, query, recipientID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{recipientID},
		"result", len(usernames),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return usernames, nil
}

// ExistsBetween reports whether an open request exists between two users
// in either direction.
func (r *FriendRequestReadRepository) ExistsBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE (requester_id = $1 AND recipient_id = $2)
			   OR (requester_id = $2 AND recipient_id = $1)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, a, b)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{a, b},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// FriendRequestWriteRepository handles friend-request write operations.
type FriendRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFriendRequestWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FriendRequestWriteRepository {
	return &FriendRequestWriteRepository{db: db, txGetter: txGetter}
}

func (r *FriendRequestWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save creates an open friend request from requester to recipient.
func (r *FriendRequestWriteRepository) Save(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	const query = `
		INSERT INTO friend_requests (request_id, requester_id, recipient_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{uuid.New(), requesterID, recipientID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{requesterID, recipientID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the open request from requester to recipient and returns
// the number of rows removed, so callers can tell a resolved request from
// a request that never existed.
func (r *FriendRequestWriteRepository) Delete(ctx context.Context, requesterID, recipientID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM friend_requests
		WHERE requester_id = $1 AND recipient_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, requesterID, recipientID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{requesterID, recipientID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
