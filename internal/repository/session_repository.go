package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// SessionRepo persists sessions keyed by the SHA-256 hash of their access token.
type SessionRepo struct{ DB *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session row.
func (r *SessionRepo) Create(ctx context.Context, userID int, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO sessions (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// UserIDByToken returns the session's user if a non-expired session exists
// for tokenHash, ErrNotFound otherwise.
func (r *SessionRepo) UserIDByToken(ctx context.Context, tokenHash string) (int, error) {
	var row struct {
		UserID    int       `db:"user_id"`
		ExpiresAt time.Time `db:"expires_at"`
	}
	err := r.DB.GetContext(ctx, &row,
		"SELECT user_id, expires_at FROM sessions WHERE token_hash=? LIMIT 1", tokenHash)
	if err != nil {
		return 0, notFound(err)
	}
	if time.Now().UTC().After(row.ExpiresAt) {
		return 0, ErrNotFound
	}
	return row.UserID, nil
}
