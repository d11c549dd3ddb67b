package model

import "time"

// Booking links a user to one room.  Its room reference may change; bookings
// are never deleted by the application.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who holds the booking.
//  RoomID    – room currently booked.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"userId"`
	RoomID    int       `db:"room_id" json:"roomId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// BookingWithRoom is the representation returned to the booking owner.
type BookingWithRoom struct {
	ID   int  `json:"id"`
	Room Room `json:"Room"`
}
