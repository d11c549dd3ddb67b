package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/queue"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// memStore is an in-memory implementation of every store interface.  InTx
// serializes callers and restores the booking table when fn fails, which
// mirrors the locked, serializable transaction of the MySQL repository.
type memStore struct {
	txMu sync.Mutex

	mu          sync.Mutex
	enrollments map[int]model.Enrollment // by user id
	tickets     map[int]model.Ticket     // by enrollment id
	hotels      []model.Hotel
	rooms       map[int]model.Room
	bookings    map[int]model.Booking
	nextID      int

	failList   error
	failRooms  error
	afterCheck func() // called after RoomWithBookings, used to widen race windows
}

func newMemStore() *memStore {
	return &memStore{
		enrollments: map[int]model.Enrollment{},
		tickets:     map[int]model.Ticket{},
		rooms:       map[int]model.Room{},
		bookings:    map[int]model.Booking{},
		nextID:      1,
	}
}

func (s *memStore) addEligibleUser(userID int) {
	s.addUser(userID, model.TicketType{IncludesHotel: true}, model.TicketStatusPaid)
}

func (s *memStore) addUser(userID int, tt model.TicketType, status model.TicketStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollmentID := userID + 1000
	s.enrollments[userID] = model.Enrollment{ID: enrollmentID, UserID: userID}
	s.tickets[enrollmentID] = model.Ticket{ID: userID, EnrollmentID: enrollmentID, Status: status, TicketType: tt}
}

func (s *memStore) addEnrollmentOnly(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments[userID] = model.Enrollment{ID: userID + 1000, UserID: userID}
}

func (s *memStore) addRoom(id, hotelID, capacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[id] = model.Room{ID: id, HotelID: hotelID, Capacity: capacity, Name: "Room"}
}

func (s *memStore) addBooking(userID, roomID int) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := model.Booking{ID: s.nextID, UserID: userID, RoomID: roomID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.bookings[b.ID] = b
	s.nextID++
	return b
}

func (s *memStore) booking(id int) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *memStore) countInRoom(roomID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

func (s *memStore) FindByUserID(_ context.Context, userID int) (model.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.enrollments[userID]
	if !ok {
		return model.Enrollment{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *memStore) FindByEnrollmentID(_ context.Context, enrollmentID int) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[enrollmentID]
	if !ok {
		return model.Ticket{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *memStore) ListHotels(context.Context) ([]model.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Hotel(nil), s.hotels...), nil
}

func (s *memStore) ListRoomsByHotel(_ context.Context, hotelID int) ([]model.RoomWithHotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRooms != nil {
		return nil, s.failRooms
	}
	var hotel model.Hotel
	for _, h := range s.hotels {
		if h.ID == hotelID {
			hotel = h
		}
	}
	var out []model.RoomWithHotel
	for _, r := range s.rooms {
		if r.HotelID == hotelID {
			out = append(out, model.RoomWithHotel{Room: r, Hotel: hotel})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) HotelExists(_ context.Context, hotelID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hotels {
		if h.ID == hotelID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListByUser(_ context.Context, userID int) ([]model.BookingWithRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList != nil {
		return nil, s.failList
	}
	out := []model.BookingWithRoom{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, model.BookingWithRoom{ID: b.ID, Room: s.rooms[b.RoomID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) RoomWithBookings(_ context.Context, roomID int) (model.RoomWithBookings, error) {
	s.mu.Lock()
	room, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return model.RoomWithBookings{}, repository.ErrNotFound
	}
	out := model.RoomWithBookings{Room: room, Bookings: []model.Booking{}}
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out.Bookings = append(out.Bookings, b)
		}
	}
	hook := s.afterCheck
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return out, nil
}

func (s *memStore) Create(_ context.Context, userID, roomID int) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.UserID == userID {
			return model.Booking{}, repository.ErrConflict
		}
	}
	b := model.Booking{ID: s.nextID, UserID: userID, RoomID: roomID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.bookings[b.ID] = b
	s.nextID++
	return b, nil
}

func (s *memStore) UpdateRoom(_ context.Context, bookingID, roomID int) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return model.Booking{}, repository.ErrNotFound
	}
	b.RoomID = roomID
	b.UpdatedAt = time.Now()
	s.bookings[bookingID] = b
	return b, nil
}

func (s *memStore) FindByID(_ context.Context, bookingID int) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return model.Booking{}, repository.ErrNotFound
	}
	return b, nil
}

func (s *memStore) FirstByUser(_ context.Context, userID int) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first *model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID && (first == nil || b.ID < first.ID) {
			b := b
			first = &b
		}
	}
	if first == nil {
		return model.Booking{}, repository.ErrNotFound
	}
	return *first, nil
}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := make(map[int]model.Booking, len(s.bookings))
	for k, v := range s.bookings {
		snapshot[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.bookings = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.BookingEvent
	err    error
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, ev queue.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

var errStorage = errors.New("storage down")

// snapshotBookings copies the booking table for before/after comparisons.
func (s *memStore) snapshotBookings() map[int]model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]model.Booking, len(s.bookings))
	for k, v := range s.bookings {
		out[k] = v
	}
	return out
}
