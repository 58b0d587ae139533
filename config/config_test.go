package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "unset", value: "", want: 24 * time.Hour},
		{name: "duration", value: "90m", want: 90 * time.Minute},
		{name: "whole hours", value: "12", want: 12 * time.Hour},
		{name: "garbage", value: "soon", want: 24 * time.Hour, wantErr: true},
		{name: "negative", value: "-1h", want: 24 * time.Hour, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOKEN_TTL", tt.value)

			got, err := GetEnvDuration("TOKEN_TTL", 24*time.Hour)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadCollectsWarnings(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Local, cfg.Timezone)
	assert.Equal(t, "workforce.db", cfg.DatabaseURL)

	require.NotEmpty(t, cfg.Warnings)
	joined := strings.Join(cfg.Warnings, "\n")
	assert.Contains(t, joined, `TOKEN_TTL="soon"`)
	assert.Contains(t, joined, "APP_TIMEZONE")
	assert.Contains(t, joined, "DATABASE_URL")
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "UTC", cfg.Timezone.String())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	for _, w := range cfg.Warnings {
		assert.NotContains(t, w, "TOKEN_TTL")
	}
}
