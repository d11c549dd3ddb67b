package model

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType is immutable reference data describing what a ticket grants.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name.
//  Price         – price in cents.
//  IsRemote      – ticket is for online attendance only.
//  IncludesHotel – ticket grants access to hotel booking.
type TicketType struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Price         int    `db:"price" json:"price"`
	IsRemote      bool   `db:"is_remote" json:"isRemote"`
	IncludesHotel bool   `db:"includes_hotel" json:"includesHotel"`
}

// Ticket belongs to one enrollment and references its TicketType.
type Ticket struct {
	ID           int          `json:"id"`
	EnrollmentID int          `json:"enrollmentId"`
	TicketTypeID int          `json:"ticketTypeId"`
	Status       TicketStatus `json:"status"`
	TicketType   TicketType   `json:"TicketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// AllowsHotel reports whether the ticket is in-person, includes a hotel and
// has been paid.
func (t Ticket) AllowsHotel() bool {
	return !t.TicketType.IsRemote && t.TicketType.IncludesHotel && t.Status != TicketStatusReserved
}
