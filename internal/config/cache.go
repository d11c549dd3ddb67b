package config

import "time"

// CacheConfig defines settings for the hotel catalog cache.  When Enabled is
// false or no Redis client is configured, catalog reads go straight to the
// database.  Prefix namespaces the keys; TTL bounds how stale a cached hotel
// or room list may be.
type CacheConfig struct {
	Enabled bool          `env:"CACHE_ENABLED" env-default:"true"`
	TTL     time.Duration `env:"CACHE_TTL" env-default:"30s"`
	Prefix  string        `env:"CACHE_PREFIX" env-default:"hotels"`
}
