package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", 42, 5)
	require.NoError(t, err)

	id, err := ParseAccessToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseAccessTokenRejects(t *testing.T) {
	good, err := NewAccessToken("secret", 1, 5)
	require.NoError(t, err)
	expired, err := NewAccessToken("secret", 1, -5)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "abc"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]struct{ secret, raw string }{
		"wrong secret": {"other", good.Token},
		"expired":      {"secret", expired.Token},
		"garbage":      {"secret", "not-a-jwt"},
		"alg none":     {"secret", none},
		"bad subject":  {"secret", badSubject},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAccessToken(c.secret, c.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestHashToken(t *testing.T) {
	h := HashToken("abc")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("abc"))
	assert.NotEqual(t, h, HashToken("abd"))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))

	hash, err = HashPassword("s3cret", 1000)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "s3cret"))
}

func TestNewAccessTokenUniquePerCall(t *testing.T) {
	first, err := NewAccessToken("s", 7, 60)
	require.NoError(t, err)
	second, err := NewAccessToken("s", 7, 60)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.NotEqual(t, HashToken(first.Token), HashToken(second.Token))

	for _, tok := range []AccessToken{first, second} {
		id, err := ParseAccessToken("s", tok.Token)
		require.NoError(t, err)
		assert.Equal(t, 7, id)
	}
}
