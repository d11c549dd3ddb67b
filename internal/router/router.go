package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/event-hotel-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/event-hotel-booking/internal/middleware" // import middleware for JWT authentication
)

// RegisterRoutes registers routes that do not require authentication: the
// health check and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth registers sign-up and sign-in.  Neither requires a session;
// sign-in is what creates one.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/users", a.SignUp)
	e.POST("/auth/sign-in", a.SignIn)
}

// Protected bundles the middleware chain shared by authenticated groups:
// JWT plus session check first, then the per-user rate limiter.
type Protected []echo.MiddlewareFunc

// NewProtected builds the authenticated chain.
func NewProtected(jwtSecret string, sessions middleware.SessionLookup, limiter echo.MiddlewareFunc) Protected {
	return Protected{middleware.JWTAuth(jwtSecret, sessions), limiter}
}
