package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/sha256" // SHA‑256 hashing for session lookup
	"encoding/hex"  // hex encoding of digests
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessToken is a signed JWT together with its expiry.  The same expiry is
// stored on the session row created at sign-in.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// ErrInvalidToken is returned by ParseAccessToken for any malformed, expired
// or wrongly signed token.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT whose subject is the user ID.
// Each token carries a random jti, so its hash is unique per session.
func NewAccessToken(secret string, userID int, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(), // distinct tokens for sign-ins within the same second
		Subject:   strconv.Itoa(userID),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken validates raw with secret and returns the user ID from
// the subject claim.  Only HMAC signing methods are accepted.
func ParseAccessToken(secret, raw string) (int, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id < 1 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// HashToken returns the SHA‑256 hash of a raw token as a hex string.  Only
// the hash is persisted in the sessions table.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
