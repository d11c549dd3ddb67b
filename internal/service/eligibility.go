package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
)

// EligibilityChecker decides from a user's ticket whether they may see
// hotel data or book a room.  Only an in-person, hotel-including, PAID
// ticket is eligible.
type EligibilityChecker struct {
	enrollments EnrollmentStore
	tickets     TicketStore
}

func NewEligibilityChecker(enrollments EnrollmentStore, tickets TicketStore) *EligibilityChecker {
	return &EligibilityChecker{enrollments: enrollments, tickets: tickets}
}

// Check is the hotel-browsing variant: a user without enrollment is
// Unauthorized, every other ineligibility is BadRequest.
func (c *EligibilityChecker) Check(ctx context.Context, userID int) (model.Ticket, error) {
	enrollment, err := c.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Ticket{}, apperr.Unauthorized("user has no enrollment")
		}
		return model.Ticket{}, fmt.Errorf("find enrollment: %w", err)
	}

	ticket, err := c.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Ticket{}, apperr.BadRequest("user has no ticket")
		}
		return model.Ticket{}, fmt.Errorf("find ticket: %w", err)
	}

	if !ticket.AllowsHotel() {
		return model.Ticket{}, apperr.BadRequest("ticket does not include a paid hotel")
	}
	return ticket, nil
}

// CheckForBooking runs the same checks but reports every eligibility
// failure, including a missing enrollment, as UnauthorizedBooking.
// Storage failures pass through unchanged.
func (c *EligibilityChecker) CheckForBooking(ctx context.Context, userID int) (model.Ticket, error) {
	ticket, err := c.Check(ctx, userID)
	if err != nil {
		if _, ok := apperr.KindOf(err); ok {
			return model.Ticket{}, apperr.UnauthorizedBooking()
		}
		return model.Ticket{}, err
	}
	return ticket, nil
}
