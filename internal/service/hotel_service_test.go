package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
	"github.com/iliyamo/event-hotel-booking/internal/model"
)

func TestListHotels(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible user with no hotels gets empty list", func(t *testing.T) {
		store := newMemStore()
		store.addEligibleUser(1)
		svc := NewHotelService(NewEligibilityChecker(store, store), store)

		hotels, err := svc.ListHotels(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, hotels)
		assert.Empty(t, hotels)
	})

	t.Run("no enrollment then no ticket", func(t *testing.T) {
		store := newMemStore()
		svc := NewHotelService(NewEligibilityChecker(store, store), store)

		_, err := svc.ListHotels(ctx, 1)
		assert.Equal(t, 401, apperr.HTTPStatus(err))

		store.addEnrollmentOnly(1)
		_, err = svc.ListHotels(ctx, 1)
		assert.Equal(t, 400, apperr.HTTPStatus(err))
	})

	t.Run("returns hotels", func(t *testing.T) {
		store := newMemStore()
		store.addEligibleUser(1)
		store.hotels = []model.Hotel{{ID: 1, Name: "Driven"}, {ID: 2, Name: "Resort"}}
		svc := NewHotelService(NewEligibilityChecker(store, store), store)

		hotels, err := svc.ListHotels(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, hotels, 2)
	})
}

func TestListRooms(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addEligibleUser(1)
	store.addEnrollmentOnly(2)
	store.hotels = []model.Hotel{{ID: 1, Name: "Driven"}, {ID: 2, Name: "Empty"}}
	store.addRoom(11, 1, 1)
	store.addRoom(10, 1, 3)
	svc := NewHotelService(NewEligibilityChecker(store, store), store)

	rooms, err := svc.ListRooms(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, 10, rooms[0].ID)
	assert.Equal(t, "Driven", rooms[0].Hotel.Name)

	rooms, err = svc.ListRooms(ctx, 1, 2)
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	for _, id := range []int{0, -1, 99} {
		_, err = svc.ListRooms(ctx, 1, id)
		assert.True(t, apperr.Is(err, apperr.KindNotFound), "hotel %d: got %v", id, err)
	}

	// unknown hotel wins over eligibility
	_, err = svc.ListRooms(ctx, 2, 99)
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
	_, err = svc.ListRooms(ctx, 2, 1)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest), "got %v", err)

	store.failRooms = errStorage
	_, err = svc.ListRooms(ctx, 1, 1)
	assert.ErrorIs(t, err, errStorage)
}

func TestHotelReads_DoNotMutate(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addEligibleUser(1)
	store.hotels = []model.Hotel{{ID: 1, Name: "Driven"}}
	store.addRoom(10, 1, 2)
	store.addBooking(2, 10)
	svc := NewHotelService(NewEligibilityChecker(store, store), store)

	before := store.snapshotBookings()
	first, err := svc.ListHotels(ctx, 1)
	require.NoError(t, err)
	second, err := svc.ListHotels(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	rooms1, err := svc.ListRooms(ctx, 1, 1)
	require.NoError(t, err)
	rooms2, err := svc.ListRooms(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, rooms1, rooms2)

	assert.Equal(t, before, store.snapshotBookings())
}
