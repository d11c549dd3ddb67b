package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "4000")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "drivent")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 1440, cfg.SessionTTLMin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "localhost:6379", cfg.Redis.address())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 60, cfg.RateLimit.Capacity)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.TTL)
	assert.True(t, cfg.EventsEnabled)
	assert.Equal(t, "logs", cfg.BookingLogDir)
}

func TestLoadMissingRequired(t *testing.T) {
	chdir(t, t.TempDir())
	setRequired(t)
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}

func TestRateLimitNormalize(t *testing.T) {
	c := RateLimitConfig{Capacity: 0, RefillTokens: -1, RefillInterval: 2 * time.Second, TTL: time.Second}
	c.normalize()

	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, 1, c.RefillTokens)
	assert.Equal(t, 10*time.Second, c.TTL)
}

func TestRedisAddressPrefersHostPort(t *testing.T) {
	c := RedisConfig{Host: "cache", Port: "6380", Addr: "localhost:6379"}
	assert.Equal(t, "cache:6380", c.address())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
