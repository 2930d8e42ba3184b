package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dom/debt-ledger/internal/api/respond"
	"github.com/dom/debt-ledger/internal/domain"
	"github.com/dom/debt-ledger/internal/logger"
	"github.com/dom/debt-ledger/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// Auth resolves the bearer token to an active user and stores it in the
// request context.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Log.Debug().Msg("[middleware.Auth] missing authorization header")
				respond.Error(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Log.Debug().Msg("[middleware.Auth] invalid authorization header format")
				respond.Error(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			user, err := authService.AuthenticateAccessToken(r.Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, service.ErrInvalidToken):
					logger.Log.Debug().Err(err).Msg("[middleware.Auth] token validation failed")
					respond.Error(w, http.StatusUnauthorized, "Invalid token")
				case errors.Is(err, service.ErrUserNotFound):
					respond.Error(w, http.StatusNotFound, "User not found")
				case errors.Is(err, service.ErrUserInactive):
					respond.Error(w, http.StatusForbidden, "User is not active")
				default:
					logger.Log.Error().Err(err).Msg("[middleware.Auth] failed to load user")
					respond.Error(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}
