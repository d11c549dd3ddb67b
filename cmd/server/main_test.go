package main

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-hotel-booking/internal/config"
)

func TestRunReturnsStartupError(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := config.Config{
		Env:    "test",
		Port:   "0",
		DBUser: "root",
		DBHost: "127.0.0.1",
		DBPort: "1",
		DBName: "drivent",
	}

	err := run(cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open database")
}

func TestNewLogger(t *testing.T) {
	log := newLogger(config.Config{Env: "local", LogLevel: "debug"})
	assert.Equal(t, "debug", log.GetLevel().String())

	log = newLogger(config.Config{Env: "prod", LogLevel: "nonsense"})
	assert.Equal(t, "info", log.GetLevel().String())
}
