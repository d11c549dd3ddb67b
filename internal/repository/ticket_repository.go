package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// TicketRepo reads tickets together with their ticket type.
type TicketRepo struct{ db *sqlx.DB }

func NewTicketRepo(db *sqlx.DB) *TicketRepo { return &TicketRepo{db: db} }

type ticketRow struct {
	ID            int       `db:"id"`
	EnrollmentID  int       `db:"enrollment_id"`
	TicketTypeID  int       `db:"ticket_type_id"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	TypeName      string    `db:"type_name"`
	Price         int       `db:"price"`
	IsRemote      bool      `db:"is_remote"`
	IncludesHotel bool      `db:"includes_hotel"`
}

// FindByEnrollmentID returns the first ticket of the enrollment or ErrNotFound.
func (r *TicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID int) (model.Ticket, error) {
	const q = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	                  tt.name AS type_name, tt.price, tt.is_remote, tt.includes_hotel
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.enrollment_id = ?
	           ORDER BY t.id
	           LIMIT 1`
	var row ticketRow
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, q, enrollmentID); err != nil {
		return model.Ticket{}, notFound(err)
	}
	return model.Ticket{
		ID:           row.ID,
		EnrollmentID: row.EnrollmentID,
		TicketTypeID: row.TicketTypeID,
		Status:       model.TicketStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		TicketType: model.TicketType{
			ID:            row.TicketTypeID,
			Name:          row.TypeName,
			Price:         row.Price,
			IsRemote:      row.IsRemote,
			IncludesHotel: row.IncludesHotel,
		},
	}, nil
}
