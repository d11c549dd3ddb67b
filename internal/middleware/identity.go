package middleware

// identity.go holds the user lookup shared by the rate limiter and the
// request logger.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userID returns the authenticated user stored by JWTAuth, or "anon" when
// the request has not been authenticated.
func userID(c echo.Context) string {
	if id, ok := c.Get(userIDKey).(int); ok && id > 0 {
		return strconv.Itoa(id)
	}
	return "anon"
}
