package middlewares

import (
	"context"
	"net/http"

	"github.com/psokolova/meetsync/internal/jwt"
	"github.com/psokolova/meetsync/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Revocations reports whether a token id has been revoked by logout.
type Revocations interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that rejects requests without a
// valid, unrevoked bearer token.
func AuthMiddleware(tokener Tokener, revocations Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if revocations != nil && claims.TokenID != "" {
				revoked, err := revocations.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					logger.Log.Errorw("revocation check failed", "err", err)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if revoked {
					logger.Log.Infow("rejected revoked token", "token_id", claims.TokenID)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
