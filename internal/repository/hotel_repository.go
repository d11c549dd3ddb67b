package repository // repository holds data access logic for domain entities

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelRepo reads hotels and their rooms.  The catalog is maintained
// outside this service, so the repository exposes no write methods.
type HotelRepo struct {
	db *sqlx.DB
}

// NewHotelRepo constructs a HotelRepo with the given DB handle.
func NewHotelRepo(db *sqlx.DB) *HotelRepo {
	return &HotelRepo{db: db}
}

// ListHotels returns every hotel ordered by ID.  An empty catalog yields an
// empty, non-nil slice.
func (r *HotelRepo) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	hotels := []model.Hotel{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &hotels,
		"SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id")
	return hotels, err
}

type roomHotelRow struct {
	model.Room
	HName      string    `db:"h_name"`
	HImage     string    `db:"h_image"`
	HCreatedAt time.Time `db:"h_created_at"`
	HUpdatedAt time.Time `db:"h_updated_at"`
}

// ListRoomsByHotel returns the rooms of a hotel, each embedding the hotel.
func (r *HotelRepo) ListRoomsByHotel(ctx context.Context, hotelID int) ([]model.RoomWithHotel, error) {
	const q = `SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at,
	                  h.name AS h_name, h.image AS h_image, h.created_at AS h_created_at, h.updated_at AS h_updated_at
	           FROM rooms r
	           JOIN hotels h ON h.id = r.hotel_id
	           WHERE r.hotel_id = ?
	           ORDER BY r.id`
	var rows []roomHotelRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, q, hotelID); err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row roomHotelRow, _ int) model.RoomWithHotel {
		return model.RoomWithHotel{
			Room: row.Room,
			Hotel: model.Hotel{
				ID:        row.HotelID,
				Name:      row.HName,
				Image:     row.HImage,
				CreatedAt: row.HCreatedAt,
				UpdatedAt: row.HUpdatedAt,
			},
		}
	}), nil
}

// HotelExists reports whether a hotel with the given ID exists.
func (r *HotelRepo) HotelExists(ctx context.Context, hotelID int) (bool, error) {
	var n int
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &n, "SELECT COUNT(*) FROM hotels WHERE id = ?", hotelID)
	return n > 0, err
}
