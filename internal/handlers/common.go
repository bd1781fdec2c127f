package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/jwt"
)

// Tokener defines the token operations handlers need to establish the
// caller's identity.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// userIDFromRequest resolves the authenticated user id from the bearer token.
func userIDFromRequest(ctx context.Context, tokener Tokener, r *http.Request) (uuid.UUID, error) {
	token, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}

	claims, err := tokener.GetClaims(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	return claims.UserID, nil
}
