package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDevelopmentDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_NAME", "authors_test")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "authors_test", cfg.Database.Database)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestLoadIgnoresMalformedIntegers(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestValidateRejectsProductionWithoutPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDatabaseConfigDurations(t *testing.T) {
	t.Setenv("DB_RETRY_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	dbCfg, err := LoadDatabaseConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "localhost", dbCfg.Host)
	assert.Equal(t, int32(25), dbCfg.MaxConns)
	assert.Equal(t, "250ms", dbCfg.RetryDelay.String())
}

func TestLoadDatabaseConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("DB_MAX_CONN_LIFETIME", "five minutes")

	cfg, err := Load()
	require.NoError(t, err)

	_, err = LoadDatabaseConfig(cfg)
	assert.Error(t, err)
}
