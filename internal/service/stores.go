// Package service implements hotel browsing and the booking workflow on top
// of storage interfaces.  Implementations live in internal/repository; tests
// substitute in-memory fakes.
package service

import (
	"context"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
	"github.com/iliyamo/event-hotel-booking/internal/metrics"
	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/queue"
)

// EnrollmentStore looks up enrollments.  A missing enrollment is reported
// as repository.ErrNotFound.
type EnrollmentStore interface {
	FindByUserID(ctx context.Context, userID int) (model.Enrollment, error)
}

// TicketStore looks up the ticket of an enrollment together with its type.
// A missing ticket is reported as repository.ErrNotFound.
type TicketStore interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int) (model.Ticket, error)
}

// HotelCatalog is the read-only hotel and room catalog.
type HotelCatalog interface {
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	ListRoomsByHotel(ctx context.Context, hotelID int) ([]model.RoomWithHotel, error)
	HotelExists(ctx context.Context, hotelID int) (bool, error)
}

// BookingStore persists bookings.  Calls made with the context handed to
// the InTx callback run in one serializable transaction, and RoomWithBookings
// locks the room for the rest of that transaction.
type BookingStore interface {
	ListByUser(ctx context.Context, userID int) ([]model.BookingWithRoom, error)
	RoomWithBookings(ctx context.Context, roomID int) (model.RoomWithBookings, error)
	Create(ctx context.Context, userID, roomID int) (model.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int) (model.Booking, error)
	FindByID(ctx context.Context, bookingID int) (model.Booking, error)
	FirstByUser(ctx context.Context, userID int) (model.Booking, error)
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher delivers booking events to downstream consumers.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev queue.BookingEvent) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) PublishBookingEvent(context.Context, queue.BookingEvent) error { return nil }

// outcome turns a result error into a metrics label.
func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	if k, ok := apperr.KindOf(err); ok {
		return k.String()
	}
	return "error"
}
