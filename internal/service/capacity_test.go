package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
)

func TestCapacityEvaluator(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 1, 2)
	store.addRoom(2, 1, 1)
	store.addRoom(3, 1, 0)
	store.addBooking(10, 2)
	store.addBooking(11, 1)

	eval := NewCapacityEvaluator(store)
	ctx := context.Background()

	testCases := []struct {
		name     string
		roomID   int
		wantKind apperr.Kind
	}{
		{name: "zero id", roomID: 0, wantKind: apperr.KindNotFound},
		{name: "negative id", roomID: -4, wantKind: apperr.KindNotFound},
		{name: "unknown room", roomID: 99, wantKind: apperr.KindNotFound},
		{name: "full room", roomID: 2, wantKind: apperr.KindForbidden},
		{name: "zero capacity", roomID: 3, wantKind: apperr.KindForbidden},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eval.Check(ctx, tc.roomID)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, tc.wantKind), "got %v", err)
		})
	}

	room, err := eval.Check(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, room.Capacity)
	assert.Len(t, room.Bookings, 1)
}
