package queue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	created := BookingEvent{Type: BookingCreated, BookingID: 7, UserID: 3, RoomID: 9, OccurredAt: "2024-01-02T03:04:05Z"}
	assert.Equal(t, "[2024-01-02T03:04:05Z] booking.created | booking_id=7 | user_id=3 | room_id=9\n", formatLine(created))

	updated := created
	updated.Type = BookingUpdated
	updated.PreviousRoomID = 4
	assert.Contains(t, formatLine(updated), "booking.updated")
	assert.Contains(t, formatLine(updated), "previous_room_id=4\n")
}

func TestHandleMessageAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, _ := test.NewNullLogger()
	c := NewConsumer("amqp://unused", dir, logger)

	require.NoError(t, c.handleMessage([]byte(`{"type":"booking.created","booking_id":1,"user_id":2,"room_id":3,"occurred_at":"t1"}`)))
	require.NoError(t, c.handleMessage([]byte(`{"type":"booking.updated","booking_id":1,"user_id":2,"room_id":4,"previous_room_id":3,"occurred_at":"t2"}`)))

	bs, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	require.NoError(t, err)
	assert.Equal(t,
		"[t1] booking.created | booking_id=1 | user_id=2 | room_id=3\n"+
			"[t2] booking.updated | booking_id=1 | user_id=2 | room_id=4 | previous_room_id=3\n",
		string(bs))
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	c := NewConsumer("amqp://unused", t.TempDir(), logrus.New())
	assert.Error(t, c.handleMessage([]byte("{not json")))
}
