package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
)

// RegisterHotels registers the hotel catalog under /hotels.  Every route
// requires an authenticated session.
func RegisterHotels(e *echo.Echo, h *handler.HotelHandler, mw Protected) {
	g := e.Group("/hotels", mw...)
	g.GET("", h.ListHotels)
	g.GET("/:hotelId", h.ListRooms)
}
