package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
	"github.com/iliyamo/event-hotel-booking/internal/metrics"
	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// HotelService serves the hotel catalog to eligible users.
type HotelService struct {
	eligibility *EligibilityChecker
	hotels      HotelCatalog
}

func NewHotelService(eligibility *EligibilityChecker, hotels HotelCatalog) *HotelService {
	return &HotelService{eligibility: eligibility, hotels: hotels}
}

// ListHotels returns every hotel once the user passes eligibility.
func (s *HotelService) ListHotels(ctx context.Context, userID int) (hotels []model.Hotel, err error) {
	defer func() { metrics.HotelRequests.WithLabelValues("list_hotels", outcome(err)).Inc() }()

	if _, err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}
	hotels, err = s.hotels.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	return hotels, nil
}

// ListRooms returns the rooms of hotelID.  The hotel is validated before
// eligibility, so an unknown hotel is NotFound even for ineligible users.
func (s *HotelService) ListRooms(ctx context.Context, userID, hotelID int) (rooms []model.RoomWithHotel, err error) {
	defer func() { metrics.HotelRequests.WithLabelValues("list_rooms", outcome(err)).Inc() }()

	if hotelID < 1 {
		return nil, apperr.NotFound("hotel not found")
	}
	exists, err := s.hotels.HotelExists(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("check hotel: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("hotel not found")
	}
	if _, err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}
	rooms, err = s.hotels.ListRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []model.RoomWithHotel{}
	}
	return rooms, nil
}
