package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// HomeStatusReader returns the current user's record for the status flag.
type HomeStatusReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// HomeFriendLister returns the caller's friends with live statuses.
type HomeFriendLister interface {
	ListFriends(ctx context.Context, userID uuid.UUID) ([]models.FriendStatus, error)
}

// HomeResponse represents the authenticated home view
// swagger:model HomeResponse
type HomeResponse struct {
	// Username of the caller
	// default: john_doe
	Username string `json:"username"`

	// Caller's busy/free status, true = free
	// default: true
	Status bool `json:"status"`

	// Friends with their live statuses
	Friends []models.FriendStatus `json:"friends"`
}

// HomeErrorResponse represents an error response for the home view
// swagger:model HomeErrorResponse
type HomeErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewHomeHandler returns the authenticated home view: the caller's own
// status and every friend's username and status.
// @Summary Home view
// @Description Returns the caller's busy/free status together with each friend's username and live status.
// @Tags home
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Home view"
// @Failure 401 {object} handlers.HomeErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.HomeErrorResponse "Internal server error"
// @Router /index [get]
// @Security BearerAuth
func NewHomeHandler(users HomeStatusReader, friends HomeFriendLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HomeErrorResponse{Error: "unauthorized"})
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if err != nil || user == nil {
			logger.Log.Errorw("failed to load user", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HomeErrorResponse{Error: "Internal server error"})
			return
		}

		friendList, err := friends.ListFriends(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list friends", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HomeErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HomeResponse{
			Username: user.Username,
			Status:   user.Status,
			Friends:  friendList,
		})
	}
}
