package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The hotel and booking services only consume the ID; the email and
// password hash are used by the sign-up and sign-in endpoints.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Session models an entry in the `sessions` table.  A session is created on
// sign-in and binds an issued access token to its user.  Only the SHA‑256
// hash of the token is stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the session.
//  TokenHash – SHA‑256 hex digest of the access token.
//  ExpiresAt – expiration timestamp of the session.
//  CreatedAt – timestamp of creation.
type Session struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
