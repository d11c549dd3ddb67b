package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// CapacityEvaluator decides whether a room can take one more booking.
type CapacityEvaluator struct {
	bookings BookingStore
}

func NewCapacityEvaluator(bookings BookingStore) *CapacityEvaluator {
	return &CapacityEvaluator{bookings: bookings}
}

// Check fails with NotFound for an ID below 1 or an unknown room and with
// Forbidden when the bookings referencing the room already reach its
// capacity.  Every booking counts, including ones held by the caller.
// Called inside a transaction, the room stays locked until commit.
func (e *CapacityEvaluator) Check(ctx context.Context, roomID int) (model.RoomWithBookings, error) {
	if roomID < 1 {
		return model.RoomWithBookings{}, apperr.NotFound("room not found")
	}
	room, err := e.bookings.RoomWithBookings(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.RoomWithBookings{}, apperr.NotFound("room not found")
		}
		return model.RoomWithBookings{}, fmt.Errorf("load room: %w", err)
	}
	if !room.Vacant() {
		return model.RoomWithBookings{}, apperr.Forbidden("room has no vacancy")
	}
	return room, nil
}
