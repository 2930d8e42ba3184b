package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			env: map[string]string{
				"JWT_SECRET": "secret",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "development", cfg.Environment)
				assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL)
				assert.Equal(t, 72*time.Hour, cfg.RefreshTokenTTL)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.False(t, cfg.IsProduction())
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"JWT_SECRET":           "secret",
				"PORT":                 "9000",
				"ENVIRONMENT":          "production",
				"ACCESS_TOKEN_MINUTES": "15",
				"REFRESH_TOKEN_HOURS":  "24",
				"LOG_LEVEL":            "debug",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
				assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.True(t, cfg.IsProduction())
			},
		},
		{
			name: "unparseable integer falls back",
			env: map[string]string{
				"JWT_SECRET":           "secret",
				"ACCESS_TOKEN_MINUTES": "soon",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL)
			},
		},
		{
			name:    "missing secret",
			env:     map[string]string{"JWT_SECRET": ""},
			wantErr: true,
		},
		{
			name: "non-positive lifetime",
			env: map[string]string{
				"JWT_SECRET":          "secret",
				"REFRESH_TOKEN_HOURS": "0",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "DATABASE_URL", "JWT_SECRET",
		"ACCESS_TOKEN_MINUTES", "REFRESH_TOKEN_HOURS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
