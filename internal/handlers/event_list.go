package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// EventLister defines the interface that the service must implement.
type EventLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.EventDB, error)
}

// EventListResponse lists the caller's events
// swagger:model EventListResponse
type EventListResponse struct {
	// Events owned by the caller, ordered by date, start time, then id
	Events []models.EventDB `json:"events"`
}

// EventErrorResponse represents an error response for event endpoints
// swagger:model EventErrorResponse
type EventErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewEventListHandler returns the caller's events.
// @Summary List own events
// @Description Returns every event owned by the caller in a deterministic order.
// @Tags events
// @Produce json
// @Success 200 {object} handlers.EventListResponse "Events"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.EventErrorResponse "Internal server error"
// @Router /event/view [get]
// @Security BearerAuth
func NewEventListHandler(svc EventLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "unauthorized"})
			return
		}

		events, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list events", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EventListResponse{Events: events})
	}
}
