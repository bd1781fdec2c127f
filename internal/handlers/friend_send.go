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

// RequestSender defines the interface that the service must implement.
type RequestSender interface {
	SendRequest(ctx context.Context, requesterID uuid.UUID, targetUsername string) error
}

// SendFriendRequestRequest represents the JSON body for sending a friend request
// swagger:model SendFriendRequestRequest
type SendFriendRequestRequest struct {
	// Username of the user to befriend
	// required: true
	// default: jane_doe
	Username string `json:"username"`
}

// SendFriendRequestResponse represents a successful send response
// swagger:model SendFriendRequestResponse
type SendFriendRequestResponse struct {
	// Confirmation message naming the other party
	// default: You sent a friend request to jane_doe!
	Message string `json:"message"`
}

// NewSendFriendRequestHandler returns an HTTP handler for sending a friend request.
// @Summary Send a friend request
// @Description Creates an open friend request. Requests to yourself, to unknown users, to existing friends, or duplicating a pending request in either direction are rejected.
// @Tags friends
// @Accept json
// @Produce json
// @Param sendFriendRequestRequest body handlers.SendFriendRequestRequest true "Target username"
// @Success 201 {object} handlers.SendFriendRequestResponse "Request created"
// @Failure 400 {object} handlers.FriendsErrorResponse "Invalid target"
// @Failure 401 {object} handlers.FriendsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FriendsErrorResponse "User not found"
// @Failure 409 {object} handlers.FriendsErrorResponse "Already friends or request pending"
// @Router /friends [post]
// @Security BearerAuth
func NewSendFriendRequestHandler(svc RequestSender, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "unauthorized"})
			return
		}

		var req SendFriendRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "Please enter a valid username"})
			return
		}

		err = svc.SendRequest(r.Context(), userID, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "Please enter a valid username"})
			case errors.Is(err, services.ErrCannotBefriendSelf):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "Please enter a valid username"})
			case errors.Is(err, services.ErrAlreadyFriends):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "You are already friends with " + req.Username + "!"})
			case errors.Is(err, services.ErrRequestAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "You have already sent a friend request to " + req.Username + "!"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FriendsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SendFriendRequestResponse{
			Message: "You sent a friend request to " + req.Username + "!",
		})
	}
}
