package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// BookingService is the part of service.BookingService used by the handler.
type BookingService interface {
	GetBooking(ctx context.Context, userID int) ([]model.BookingWithRoom, error)
	PostBooking(ctx context.Context, userID, roomID int) (model.Booking, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID int) (model.Booking, error)
}

// BookingHandler exposes the booking workflow.  All routes sit behind
// JWTAuth, which stores the session user under "user_id".
type BookingHandler struct {
	Bookings BookingService
	Log      logrus.FieldLogger
}

// NewBookingHandler panics if svc is nil.
func NewBookingHandler(svc BookingService, log logrus.FieldLogger) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: svc, Log: log}
}

// bookingReq is the body of POST /booking and PUT /booking/:bookingId.  A
// pointer keeps an explicit 0 apart from a missing field.
type bookingReq struct {
	RoomID *int `json:"roomId" validate:"required"`
}

type bookingResp struct {
	BookingID int `json:"bookingId"`
}

// bindBooking reads and validates the request body.
func bindBooking(c echo.Context) (int, bool) {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return 0, false
	}
	if err := c.Validate(&req); err != nil {
		return 0, false
	}
	return *req.RoomID, true
}

// List handles GET /booking.
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.Bookings.GetBooking(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /booking.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, ok := bindBooking(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}
	booking, err := h.Bookings.PostBooking(c.Request().Context(), userID, roomID)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, bookingResp{BookingID: booking.ID})
}

// Update handles PUT /booking/:bookingId.  A non-numeric bookingId is passed
// on as 0 so the service reports it as NotFound after its earlier checks.
func (h *BookingHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, ok := bindBooking(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}
	booking, err := h.Bookings.UpdateBooking(c.Request().Context(), userID, roomID, pathID(c, "bookingId"))
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, bookingResp{BookingID: booking.ID})
}
