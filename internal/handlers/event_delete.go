package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/logger"
	"github.com/psokolova/meetsync/internal/services"
)

// EventDeleter defines the interface that the service must implement.
type EventDeleter interface {
	Delete(ctx context.Context, eventID, userID uuid.UUID) error
}

// DeleteEventResponse represents a successful delete response
// swagger:model DeleteEventResponse
type DeleteEventResponse struct {
	// Success message
	// default: Event deleted
	Message string `json:"message"`
}

// NewDeleteEventHandler returns an HTTP handler for deleting an event.
// @Summary Delete an event
// @Description Deletes an event constrained to (id AND owner), matching the edit path.
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} handlers.DeleteEventResponse "Event deleted"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid event id"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /event/delete/{id} [post]
// @Security BearerAuth
func NewDeleteEventHandler(svc EventDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "unauthorized"})
			return
		}

		eventID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid event id"})
			return
		}

		err = svc.Delete(r.Context(), eventID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEventNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EventErrorResponse{Error: "event not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(EventErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteEventResponse{Message: "Event deleted"})
	}
}
