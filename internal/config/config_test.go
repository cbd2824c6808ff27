package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_URL", "SEED_PATH", "DEFAULT_START_TIME", "DEFAULT_TIME_LIMIT_HOURS",
		"TRANSFER_PENALTY_MINUTES", "STRICT_WINDOWS", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "data/seeds/locations.json", cfg.SeedPath)
	assert.Equal(t, "08:00", cfg.DefaultStartTime)
	assert.Equal(t, 6.0, cfg.DefaultTimeLimit)
	assert.Equal(t, 5*time.Minute, cfg.TransferPenalty)
	assert.False(t, cfg.StrictWindows)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_PATH", "/srv/seeds/hanoi.json")
	t.Setenv("DEFAULT_START_TIME", " 09:30 ")
	t.Setenv("DEFAULT_TIME_LIMIT_HOURS", "7.5")
	t.Setenv("TRANSFER_PENALTY_MINUTES", "0")
	t.Setenv("STRICT_WINDOWS", "true")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/seeds/hanoi.json", cfg.SeedPath)
	assert.Equal(t, "09:30", cfg.DefaultStartTime)
	assert.Equal(t, 7.5, cfg.DefaultTimeLimit)
	assert.Equal(t, time.Duration(0), cfg.TransferPenalty)
	assert.True(t, cfg.StrictWindows)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DEFAULT_START_TIME", "8 o'clock"},
		{"DEFAULT_TIME_LIMIT_HOURS", "-1"},
		{"DEFAULT_TIME_LIMIT_HOURS", "six"},
		{"TRANSFER_PENALTY_MINUTES", "2.5"},
		{"STRICT_WINDOWS", "maybe"},
		{"LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
