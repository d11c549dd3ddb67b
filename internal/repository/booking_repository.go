package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// BookingRepo provides the booking operations used by the booking
// workflow.  Every method joins the transaction carried by ctx when called
// inside InTx, so the capacity check and the write it guards run atomically.
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

// InTx runs fn in a SERIALIZABLE transaction.
func (r *BookingRepo) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return InTx(ctx, r.db, fn)
}

const bookingColumns = "id, user_id, room_id, created_at, updated_at"

type bookingRoomRow struct {
	BookingID int `db:"booking_id"`
	model.Room
}

// ListByUser returns the user's bookings each embedding its room.
func (r *BookingRepo) ListByUser(ctx context.Context, userID int) ([]model.BookingWithRoom, error) {
	const q = `SELECT b.id AS booking_id, r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
	           FROM bookings b
	           JOIN rooms r ON r.id = b.room_id
	           WHERE b.user_id = ?
	           ORDER BY b.id`
	var rows []bookingRoomRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, q, userID); err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row bookingRoomRow, _ int) model.BookingWithRoom {
		return model.BookingWithRoom{ID: row.BookingID, Room: row.Room}
	}), nil
}

// RoomWithBookings loads a room and every booking that references it.  The
// room row is read with FOR UPDATE so that, inside a transaction, concurrent
// bookings of the same room are serialized until commit.
func (r *BookingRepo) RoomWithBookings(ctx context.Context, roomID int) (model.RoomWithBookings, error) {
	q := ext(ctx, r.db)
	var room model.RoomWithBookings
	err := sqlx.GetContext(ctx, q, &room.Room,
		"SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id = ? FOR UPDATE", roomID)
	if err != nil {
		return model.RoomWithBookings{}, notFound(err)
	}
	room.Bookings = []model.Booking{}
	if err := sqlx.SelectContext(ctx, q, &room.Bookings,
		"SELECT "+bookingColumns+" FROM bookings WHERE room_id = ? ORDER BY id", roomID); err != nil {
		return model.RoomWithBookings{}, err
	}
	return room, nil
}

// Create inserts a booking and reads it back.  A second booking for the same
// user violates the unique index and yields ErrConflict.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID int) (model.Booking, error) {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, "INSERT INTO bookings (user_id, room_id) VALUES (?, ?)", userID, roomID)
	if err != nil {
		if isDuplicate(err) {
			return model.Booking{}, ErrConflict
		}
		return model.Booking{}, fmt.Errorf("could not add booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	return r.FindByID(ctx, int(id))
}

// UpdateRoom moves a booking to another room and returns the updated row.
func (r *BookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID int) (model.Booking, error) {
	q := ext(ctx, r.db)
	_, err := q.ExecContext(ctx,
		"UPDATE bookings SET room_id = ?, updated_at = ? WHERE id = ?", roomID, time.Now().UTC(), bookingID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("could not update booking: %w", err)
	}
	// an unknown id updates nothing and surfaces as ErrNotFound here
	return r.FindByID(ctx, bookingID)
}

// FindByID returns a booking or ErrNotFound.
func (r *BookingRepo) FindByID(ctx context.Context, bookingID int) (model.Booking, error) {
	var b model.Booking
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &b,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = ?", bookingID)
	return b, notFound(err)
}

// FirstByUser returns the user's earliest booking or ErrNotFound.
func (r *BookingRepo) FirstByUser(ctx context.Context, userID int) (model.Booking, error) {
	var b model.Booking
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &b,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id = ? ORDER BY id LIMIT 1", userID)
	return b, notFound(err)
}
