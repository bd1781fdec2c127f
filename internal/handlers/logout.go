package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/psokolova/meetsync/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// LogoutTokenGetter extracts the raw bearer token from a request.
type LogoutTokenGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary Log out
// @Description Revokes the presented token until its natural expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 401 {object} handlers.LogoutErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.LogoutErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokener LogoutTokenGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "unauthorized",
			})
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
