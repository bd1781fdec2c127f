package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/services"
)

// RequestResolver defines the interface that the service must implement.
type RequestResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID, requesterUsername, decision string) error
}

// ResolveFriendRequestRequest represents the JSON body for resolving a request
// swagger:model ResolveFriendRequestRequest
type ResolveFriendRequestRequest struct {
	// Username of the request sender
	// required: true
	// default: jane_doe
	Username string `json:"username"`

	// Decision, accept or decline
	// required: true
	// default: accept
	Decision string `json:"decision"`
}

// ResolveFriendRequestResponse represents a successful resolve response
// swagger:model ResolveFriendRequestResponse
type ResolveFriendRequestResponse struct {
	// Confirmation message naming the decision and the other party
	// default: You have accepted jane_doe's friend request!
	Message string `json:"message"`
}

// NewResolveFriendRequestHandler returns an HTTP handler for accepting or
// declining an incoming friend request.
// @Summary Resolve a friend request
// @Description Deletes the open request. Accepting additionally creates the mutual friendship; declining creates nothing. Declining an already-resolved request is a no-op.
// @Tags friends
// @Accept json
// @Produce json
// @Param resolveFriendRequestRequest body handlers.ResolveFriendRequestRequest true "Requester and decision"
// @Success 200 {object} handlers.ResolveFriendRequestResponse "Request resolved"
// @Failure 400 {object} handlers.FriendsErrorResponse "Invalid body or decision"
// @Failure 401 {object} handlers.FriendsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FriendsErrorResponse "No such user or open request"
// @Router /friends/request [post]
// @Security BearerAuth
func NewResolveFriendRequestHandler(svc RequestResolver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "unauthorized"})
			return
		}

		var req ResolveFriendRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "invalid request body"})
			return
		}

		err = svc.Resolve(r.Context(), userID, req.Username, req.Decision)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDecision):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "decision must be accept or decline"})
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "friend request not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		verb := "accepted"
		if req.Decision == services.DecisionDecline {
			verb = "declined"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResolveFriendRequestResponse{
			Message: "You have " + verb + " " + req.Username + "'s friend request!",
		})
	}
}
