package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/psokolova/meetsync/internal/services"
)

// ScheduleUpdater defines the interface that the service must implement.
type ScheduleUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, schedule models.Schedule) error
}

// UpdateScheduleRequest represents the JSON body for overwriting a schedule
// swagger:model UpdateScheduleRequest
type UpdateScheduleRequest struct {
	// Weekday to hourly slots, true = free; each listed day needs exactly 24 slots
	// required: true
	Schedule models.Schedule `json:"schedule"`
}

// UpdateScheduleResponse represents a successful update response
// swagger:model UpdateScheduleResponse
type UpdateScheduleResponse struct {
	// Success message
	// default: Schedule updated
	Message string `json:"message"`
}

// NewUpdateScheduleHandler returns an HTTP handler that overwrites the
// caller's schedule.
// @Summary Update own schedule
// @Description Validates and overwrites the caller's weekly availability schedule.
// @Tags schedule
// @Accept json
// @Produce json
// @Param updateScheduleRequest body handlers.UpdateScheduleRequest true "New schedule"
// @Success 200 {object} handlers.UpdateScheduleResponse "Schedule updated"
// @Failure 400 {object} handlers.ScheduleErrorResponse "Invalid schedule"
// @Failure 401 {object} handlers.ScheduleErrorResponse "Unauthorized"
// @Router /update/schedule [post]
// @Security BearerAuth
func NewUpdateScheduleHandler(svc ScheduleUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "unauthorized"})
			return
		}

		var req UpdateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Schedule == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "invalid request body"})
			return
		}

		err = svc.Update(r.Context(), userID, req.Schedule)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSchedule):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateScheduleResponse{Message: "Schedule updated"})
	}
}
