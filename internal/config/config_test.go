package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/config"
)

func TestLoadPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/innkeeper")
	t.Setenv("SQLITE_PATH", "innkeeper.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	driver, dsn, err := cfg.Driver()
	require.NoError(t, err)
	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "postgres://localhost/innkeeper", dsn)
}

func TestLoadFallsBackToSQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", "innkeeper.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	driver, dsn, err := cfg.Driver()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", driver)
	assert.Equal(t, "innkeeper.db", dsn)
}

func TestDriverRequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	_, _, err = cfg.Driver()
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
