package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
)

// OwnScheduleGetter defines the interface that the service must implement.
type OwnScheduleGetter interface {
	GetOwn(ctx context.Context, userID uuid.UUID) (models.Schedule, error)
}

// ScheduleResponse wraps a weekly availability schedule
// swagger:model ScheduleResponse
type ScheduleResponse struct {
	// Weekday to hourly slots, true = free
	Schedule models.Schedule `json:"schedule"`
}

// ScheduleErrorResponse represents an error response for schedule endpoints
// swagger:model ScheduleErrorResponse
type ScheduleErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewOwnScheduleHandler returns the caller's stored schedule for editing.
// @Summary Get own schedule
// @Description Returns the caller's stored weekly availability schedule.
// @Tags schedule
// @Produce json
// @Success 200 {object} handlers.ScheduleResponse "Schedule"
// @Failure 401 {object} handlers.ScheduleErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ScheduleErrorResponse "Internal server error"
// @Router /schedule/create [get]
// @Security BearerAuth
func NewOwnScheduleHandler(svc OwnScheduleGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "unauthorized"})
			return
		}

		schedule, err := svc.GetOwn(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to load schedule", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScheduleResponse{Schedule: schedule})
	}
}
