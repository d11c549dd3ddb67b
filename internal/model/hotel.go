package model

import "time"

// Hotel is read-only catalog data.
type Hotel struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Image     string    `db:"image" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Room belongs to one hotel.  Capacity is the maximum number of bookings
// that may reference the room at the same time.
type Room struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Capacity  int       `db:"capacity" json:"capacity"`
	HotelID   int       `db:"hotel_id" json:"hotelId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// RoomWithHotel is a room together with the hotel it belongs to.
type RoomWithHotel struct {
	Room
	Hotel Hotel `json:"Hotel"`
}

// RoomWithBookings is a room together with every booking currently
// referencing it.
type RoomWithBookings struct {
	Room
	Bookings []Booking `json:"Booking"`
}

// Vacant reports whether another booking fits in the room.
func (r RoomWithBookings) Vacant() bool {
	return len(r.Bookings) < r.Capacity
}
