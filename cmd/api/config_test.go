package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/reviews")
	t.Setenv("ADDR", "")
	t.Setenv("ENV", "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.addr)
	assert.Equal(t, "development", cfg.env)
	assert.Equal(t, "postgres://localhost:5432/reviews", cfg.db.addr)
	assert.Equal(t, int32(10), cfg.db.maxConns)
	assert.Equal(t, 15*time.Minute, cfg.db.maxIdleTime)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/reviews")
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_TIME", "2m")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.addr)
	assert.Equal(t, int32(25), cfg.db.maxConns)
	assert.Equal(t, 2*time.Minute, cfg.db.maxIdleTime)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/reviews")
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("DB_MAX_IDLE_TIME", "forever")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.db.maxConns)
	assert.Equal(t, 15*time.Minute, cfg.db.maxIdleTime)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := loadConfig()
	assert.ErrorIs(t, err, errMissingDatabaseURL)
}
