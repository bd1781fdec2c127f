package handlers

import (
	"encoding/json"
	"net/http"
)

// LandingResponse describes the public landing payload
// swagger:model LandingResponse
type LandingResponse struct {
	// Service name
	// default: meetsync
	Service string `json:"service"`

	// Welcome message
	// default: Schedule time with your friends
	Message string `json:"message"`
}

// NewLandingHandler returns the public landing page handler.
// @Summary Landing page
// @Description Public service information, no authentication required
// @Tags public
// @Produce json
// @Success 200 {object} handlers.LandingResponse "Service info"
// @Router / [get]
func NewLandingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LandingResponse{
			Service: "meetsync",
			Message: "Schedule time with your friends",
		})
	}
}
