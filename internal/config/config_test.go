package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "test.db")
	t.Setenv("SMTP_USER", "owner@example.com")
	t.Setenv("OWNER_CHAT_ID", "12345")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test.db", cfg.DatabaseURL)
	assert.Equal(t, int64(12345), cfg.OwnerChatID)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "owner@example.com", cfg.SMTP.From)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadRejectsEmptyDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_INT", "nope")
	assert.True(t, getEnvAsBool("X_BOOL", false))
	assert.Equal(t, int64(7), getEnvAsInt("X_INT", 7))
	assert.Equal(t, "dflt", getEnv("X_MISSING_KEY", "dflt"))
}
