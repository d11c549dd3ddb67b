package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"  // context for the session lookup
	"errors"   // errors.Is on the repository sentinel
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/event-hotel-booking/internal/repository"
	"github.com/iliyamo/event-hotel-booking/internal/utils"
)

// userIDKey is the echo context key holding the authenticated user ID (int).
const userIDKey = "user_id"

// SessionLookup resolves a token hash to the user of a live session.  It is
// implemented by repository.SessionRepo.
type SessionLookup interface {
	UserIDByToken(ctx context.Context, tokenHash string) (int, error)
}

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// requires a live session row for it.  A token that verifies but whose
// session is missing, expired or owned by another user is rejected with 401.
// On success the user ID is stored in the context under "user_id".
func JWTAuth(secret string, sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			uid, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			// The token alone is not enough; the session must still exist.
			sessionUser, err := sessions.UserIDByToken(c.Request().Context(), utils.HashToken(raw))
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
			}
			if err != nil || sessionUser != uid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session not found"})
			}

			c.Set(userIDKey, uid)
			return next(c)
		}
	}
}
