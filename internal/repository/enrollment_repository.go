package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// EnrollmentRepo reads enrollments.  Enrollments are created outside this
// service.
type EnrollmentRepo struct{ db *sqlx.DB }

func NewEnrollmentRepo(db *sqlx.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// FindByUserID returns the user's enrollment or ErrNotFound.
func (r *EnrollmentRepo) FindByUserID(ctx context.Context, userID int) (model.Enrollment, error) {
	var e model.Enrollment
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &e,
		"SELECT id, name, user_id, created_at, updated_at FROM enrollments WHERE user_id = ? LIMIT 1", userID)
	return e, notFound(err)
}
