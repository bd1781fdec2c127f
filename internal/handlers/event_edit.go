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

// EventEditor defines the interface that the service must implement.
type EventEditor interface {
	Edit(ctx context.Context, eventID, userID uuid.UUID, title, description, date, startTime, endTime string) error
}

// EditEventRequest represents the JSON body for editing an event
// swagger:model EditEventRequest
type EditEventRequest struct {
	// Title
	// required: true
	// default: Standup
	Title string `json:"title"`

	// Description
	// default: Daily sync
	Description string `json:"description"`

	// Date in MM/DD/YYYY
	// required: true
	// default: 01/02/2023
	Date string `json:"date"`

	// Start time in 24-hour HH:MM
	// required: true
	// default: 09:00
	StartTime string `json:"start_time"`

	// End time in 24-hour HH:MM
	// required: true
	// default: 09:30
	EndTime string `json:"end_time"`
}

// EditEventResponse represents a successful edit response
// swagger:model EditEventResponse
type EditEventResponse struct {
	// Success message
	// default: Event edited
	Message string `json:"message"`
}

// NewEditEventHandler returns an HTTP handler for editing an event.
// @Summary Edit an event
// @Description Updates an event constrained to (id AND owner). Another user's event is reported as not found.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param editEventRequest body handlers.EditEventRequest true "Event fields"
// @Success 200 {object} handlers.EditEventResponse "Event edited"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid id, body, date, or time"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /event/edit/{id} [post]
// @Security BearerAuth
func NewEditEventHandler(svc EventEditor, tokener Tokener) http.HandlerFunc {
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

		var req EditEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		err = svc.Edit(r.Context(), eventID, userID, req.Title, req.Description, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEventDate),
				errors.Is(err, services.ErrInvalidEventTime):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(EventErrorResponse{Error: err.Error()})
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
		json.NewEncoder(w).Encode(EditEventResponse{Message: "Event edited"})
	}
}
