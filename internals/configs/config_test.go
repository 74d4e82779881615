package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("AC_STR", "value")
	t.Setenv("AC_EMPTY", "")
	t.Setenv("AC_INT", "42")
	t.Setenv("AC_BAD_INT", "forty")
	t.Setenv("AC_DUR", "90s")
	t.Setenv("AC_SECS", "120")
	t.Setenv("AC_BAD_DUR", "-5m")

	assert.Equal(t, "value", GetEnv("AC_STR", "def"))
	assert.Equal(t, "def", GetEnv("AC_EMPTY", "def"))
	assert.Equal(t, "", GetEnv("AC_MISSING"))

	assert.Equal(t, 42, GetEnvInt("AC_INT", 1))
	assert.Equal(t, 1, GetEnvInt("AC_BAD_INT", 1))

	assert.Equal(t, 90*time.Second, GetEnvDuration("AC_DUR", time.Minute))
	assert.Equal(t, 2*time.Minute, GetEnvDuration("AC_SECS", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("AC_BAD_DUR", time.Minute))
}

func TestLoadEnvAndValidateServe(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("BLACKLIST_DRIVER", "Redis")
	t.Setenv("DB_NAME", "care")

	cfg, note := LoadEnv()
	assert.Equal(t, "using system environment", note)
	assert.Equal(t, "redis", cfg.BlacklistDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Contains(t, cfg.DSN(), "/care?sslmode=disable")

	require.Error(t, cfg.ValidateServe())

	cfg.JWTSecret = "a"
	require.NoError(t, cfg.ValidateServe())

	cfg.BlacklistDriver = "memcached"
	assert.Error(t, cfg.ValidateServe())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := NewLogger("debug", format)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(-1))
	}
}
