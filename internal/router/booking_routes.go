package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
)

// RegisterBooking registers the booking workflow under /booking.  The
// handlers read the session user placed in the context by JWTAuth.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, mw Protected) {
	g := e.Group("/booking", mw...)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:bookingId", h.Update)
}
