// Package queue defines message payloads exchanged over the message broker
// and the publisher/consumer pair that moves them.
package queue

// Booking event types.
const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
)

// BookingEvent is published after a booking is created or moved to another
// room.  PreviousRoomID is zero for created bookings.
type BookingEvent struct {
	Type           string `json:"type"`
	BookingID      int    `json:"booking_id"`
	UserID         int    `json:"user_id"`
	RoomID         int    `json:"room_id"`
	PreviousRoomID int    `json:"previous_room_id,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}
