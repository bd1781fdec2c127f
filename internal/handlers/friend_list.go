package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
)

// IncomingLister defines the interface that the service must implement.
type IncomingLister interface {
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// IncomingRequestsResponse lists open incoming friend requests
// swagger:model IncomingRequestsResponse
type IncomingRequestsResponse struct {
	// Usernames of users with an open request aimed at the caller
	Requests []string `json:"requests"`
}

// FriendsErrorResponse represents an error response for friend endpoints
// swagger:model FriendsErrorResponse
type FriendsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewIncomingRequestsHandler returns the open friend requests aimed at the caller.
// @Summary List incoming friend requests
// @Description Returns the usernames of all users with an open friend request directed at the caller.
// @Tags friends
// @Produce json
// @Success 200 {object} handlers.IncomingRequestsResponse "Incoming requests"
// @Failure 401 {object} handlers.FriendsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.FriendsErrorResponse "Internal server error"
// @Router /friends [get]
// @Security BearerAuth
func NewIncomingRequestsHandler(svc IncomingLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "unauthorized"})
			return
		}

		requests, err := svc.ListIncoming(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list incoming requests", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(IncomingRequestsResponse{Requests: requests})
	}
}
