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

// EventCreator defines the interface that the service must implement.
type EventCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, description, date, startTime, endTime string) (uuid.UUID, error)
}

// CreateEventRequest represents the JSON body for creating an event
// swagger:model CreateEventRequest
type CreateEventRequest struct {
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
	// default: 09:15
	EndTime string `json:"end_time"`
}

// CreateEventResponse represents a successful creation response
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	// Identifier of the created event
	EventID uuid.UUID `json:"event_id"`

	// Success message
	// default: Event created
	Message string `json:"message"`
}

// NewCreateEventHandler returns an HTTP handler for creating an event.
// @Summary Create an event
// @Description Creates an event owned by the caller. Date and times are validated and stored as MM/DD/YYYY and 24-hour HH:MM.
// @Tags events
// @Accept json
// @Produce json
// @Param createEventRequest body handlers.CreateEventRequest true "Event fields"
// @Success 201 {object} handlers.CreateEventResponse "Event created"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid body, date, or time"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Router /event/create [post]
// @Security BearerAuth
func NewCreateEventHandler(svc EventCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromRequest(r.Context(), tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "unauthorized"})
			return
		}

		var req CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		eventID, err := svc.Create(r.Context(), userID, req.Title, req.Description, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEventDate),
				errors.Is(err, services.ErrInvalidEventTime):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(EventErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(EventErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateEventResponse{
			EventID: eventID,
			Message: "Event created",
		})
	}
}
