package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelService is the part of service.HotelService used by the handler.
type HotelService interface {
	ListHotels(ctx context.Context, userID int) ([]model.Hotel, error)
	ListRooms(ctx context.Context, userID, hotelID int) ([]model.RoomWithHotel, error)
}

// HotelHandler serves the hotel catalog to authenticated users.
type HotelHandler struct {
	Hotels HotelService
	Log    logrus.FieldLogger
}

// NewHotelHandler panics if svc is nil.
func NewHotelHandler(svc HotelService, log logrus.FieldLogger) *HotelHandler {
	if svc == nil {
		panic("nil service passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: svc, Log: log}
}

// ListHotels handles GET /hotels.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	hotels, err := h.Hotels.ListHotels(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// ListRooms handles GET /hotels/:hotelId.  A non-numeric hotelId is treated
// like an unknown hotel.
func (h *HotelHandler) ListRooms(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rooms, err := h.Hotels.ListRooms(c.Request().Context(), userID, pathID(c, "hotelId"))
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, rooms)
}
