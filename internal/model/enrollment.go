package model

import "time"

// Enrollment is a user's registration for the event.  Each user has at most
// one enrollment.
type Enrollment struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	UserID    int       `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
