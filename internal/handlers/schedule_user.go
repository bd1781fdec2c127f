package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/psokolova/meetsync/internal/services"
)

// UserScheduleGetter defines the interface that the service must implement.
type UserScheduleGetter interface {
	GetByUsername(ctx context.Context, username string) (models.Schedule, error)
}

// NewUserScheduleHandler returns any user's schedule by username. Readable
// by any authenticated requester, no friendship restriction.
// @Summary Get a user's schedule
// @Description Returns the named user's weekly availability schedule.
// @Tags schedule
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ScheduleResponse "Schedule"
// @Failure 401 {object} handlers.ScheduleErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ScheduleErrorResponse "User not found"
// @Router /get/schedule/{username} [get]
// @Security BearerAuth
func NewUserScheduleHandler(svc UserScheduleGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := userIDFromRequest(r.Context(), tokener, r); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "unauthorized"})
			return
		}

		username := chi.URLParam(r, "username")

		schedule, err := svc.GetByUsername(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "user not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ScheduleErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScheduleResponse{Schedule: schedule})
	}
}
