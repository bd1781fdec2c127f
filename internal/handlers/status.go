package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
)

// StatusToggler defines the interface that the service must implement.
type StatusToggler interface {
	ToggleStatus(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ToggleStatusResponse represents a successful status toggle
// swagger:model ToggleStatusResponse
type ToggleStatusResponse struct {
	// New busy/free status, true = free
	// default: false
	Status bool `json:"status"`
}

// StatusErrorResponse represents an error response for the status endpoint
// swagger:model StatusErrorResponse
type StatusErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewToggleStatusHandler flips the caller's busy/free flag.
// @Summary Toggle own status
// @Description Flips the caller's busy/free status and returns the new value.
// @Tags schedule
// @Produce json
// @Success 200 {object} handlers.ToggleStatusResponse "New status"
// @Failure 401 {object} handlers.StatusErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.StatusErrorResponse "Internal server error"
// @Router /update/status [post]
// @Security BearerAuth
func NewToggleStatusHandler(svc StatusToggler, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StatusErrorResponse{Error: "unauthorized"})
			return
		}

		status, err := svc.ToggleStatus(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to toggle status", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StatusErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ToggleStatusResponse{Status: status})
	}
}
