package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
	"github.com/iliyamo/event-hotel-booking/internal/metrics"
	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/queue"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// BookingService implements the booking workflow.  A user moves between
// having no booking and holding exactly one booking whose room may change.
//
// Eligibility is always checked first, then room capacity, then the
// reservation and ownership rules.  Capacity, reservation and ownership
// checks run in the same transaction as the write they guard.
type BookingService struct {
	eligibility *EligibilityChecker
	capacity    *CapacityEvaluator
	bookings    BookingStore
	events      EventPublisher
	log         logrus.FieldLogger
	now         func() time.Time
}

// NewBookingService wires the workflow.  A nil publisher disables events.
func NewBookingService(eligibility *EligibilityChecker, bookings BookingStore, events EventPublisher, log logrus.FieldLogger) *BookingService {
	if eligibility == nil || bookings == nil {
		panic("nil dependency passed to NewBookingService")
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &BookingService{
		eligibility: eligibility,
		capacity:    NewCapacityEvaluator(bookings),
		bookings:    bookings,
		events:      events,
		log:         log,
		now:         time.Now,
	}
}

// GetBooking returns the user's bookings with their rooms.  The user must
// pass hotel eligibility (Unauthorized without enrollment, BadRequest for an
// ineligible ticket).  No bookings is a successful empty result; a failing
// lookup is NotFound.
func (s *BookingService) GetBooking(ctx context.Context, userID int) (out []model.BookingWithRoom, err error) {
	defer func() { metrics.BookingOperations.WithLabelValues("get", outcome(err)).Inc() }()

	if _, err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("list bookings failed")
		return nil, apperr.NotFound("bookings not found")
	}
	return bookings, nil
}

// PostBooking books roomID for userID.  It fails with UnauthorizedBooking
// for an ineligible user, NotFound for an invalid or unknown room, and
// Forbidden when the room is full or the user already holds a booking.
func (s *BookingService) PostBooking(ctx context.Context, userID, roomID int) (booking model.Booking, err error) {
	defer func() { metrics.BookingOperations.WithLabelValues("create", outcome(err)).Inc() }()

	if _, err := s.eligibility.CheckForBooking(ctx, userID); err != nil {
		return model.Booking{}, err
	}

	err = s.bookings.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.capacity.Check(ctx, roomID); err != nil {
			return err
		}
		if _, err := s.bookings.FirstByUser(ctx, userID); err == nil {
			return apperr.Forbidden("user already has a booking")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("check reservation: %w", err)
		}
		created, err := s.bookings.Create(ctx, userID, roomID)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return apperr.Forbidden("user already has a booking")
			}
			return fmt.Errorf("create booking: %w", err)
		}
		booking = created
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}

	s.publish(ctx, queue.BookingEvent{
		Type:      queue.BookingCreated,
		BookingID: booking.ID,
		UserID:    userID,
		RoomID:    roomID,
	})
	return booking, nil
}

// UpdateBooking moves bookingID to roomID.  On top of the PostBooking
// checks for the new room, the user must already hold a reservation
// (Forbidden), the booking must exist (NotFound) and belong to the user
// (Forbidden).  Ownership is verified before the write, so a rejected
// request never changes another user's booking.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID int) (booking model.Booking, err error) {
	defer func() { metrics.BookingOperations.WithLabelValues("update", outcome(err)).Inc() }()

	if _, err := s.eligibility.CheckForBooking(ctx, userID); err != nil {
		return model.Booking{}, err
	}

	var previousRoomID int
	err = s.bookings.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.capacity.Check(ctx, roomID); err != nil {
			return err
		}
		if _, err := s.bookings.FirstByUser(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.Forbidden("user has no reservation")
			}
			return fmt.Errorf("check reservation: %w", err)
		}
		if bookingID < 1 {
			return apperr.NotFound("booking not found")
		}
		current, err := s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.NotFound("booking not found")
			}
			return fmt.Errorf("load booking: %w", err)
		}
		if current.UserID != userID {
			return apperr.Forbidden("booking belongs to another user")
		}
		previousRoomID = current.RoomID

		updated, err := s.bookings.UpdateRoom(ctx, bookingID, roomID)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		booking = updated
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}

	s.publish(ctx, queue.BookingEvent{
		Type:           queue.BookingUpdated,
		BookingID:      booking.ID,
		UserID:         userID,
		RoomID:         roomID,
		PreviousRoomID: previousRoomID,
	})
	return booking, nil
}

// publish sends ev after the transaction committed.  A failure is logged and
// counted but never fails the request.
func (s *BookingService) publish(ctx context.Context, ev queue.BookingEvent) {
	ev.OccurredAt = s.now().UTC().Format(time.RFC3339)
	if err := s.events.PublishBookingEvent(ctx, ev); err != nil {
		metrics.EventPublishFailures.Inc()
		s.log.WithError(err).WithFields(logrus.Fields{
			"event":      ev.Type,
			"booking_id": ev.BookingID,
		}).Warn("publish booking event failed")
	}
}
