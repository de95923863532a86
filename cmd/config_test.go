package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig(env.Options{Environment: map[string]string{
		"DATABASE_URL": "postgres://localhost/parcels",
		"JWT_SECRET":   "s3cret",
	}})

	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, 720*time.Hour, cfg.JWTExpire)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.CORSOrigins)
}

func Test_ParseConfigReadsEveryOption(t *testing.T) {
	cfg, err := ParseConfig(env.Options{Environment: map[string]string{
		"DATABASE_URL": "postgres://db/parcels",
		"HTTP_PORT":    "8080",
		"JWT_SECRET":   "s3cret",
		"JWT_EXPIRE":   "1h",
		"CORS_ORIGINS": "http://a.test,http://b.test",
		"LOG_LEVEL":    "debug",
		"BCRYPT_COST":  "12",
	}})

	require.NoError(t, err)
	assert.Equal(t, Config{
		DatabaseURL: "postgres://db/parcels",
		HTTPPort:    "8080",
		JWTSecret:   "s3cret",
		JWTExpire:   time.Hour,
		CORSOrigins: []string{"http://a.test", "http://b.test"},
		LogLevel:    slog.LevelDebug,
		BcryptCost:  12,
	}, cfg)
}

func Test_ParseConfigRejectsInvalidEnvironment(t *testing.T) {
	tests := map[string]map[string]string{
		"missing secret":   {"DATABASE_URL": "postgres://db"},
		"missing database": {"JWT_SECRET": "s3cret"},
		"bad duration":     {"DATABASE_URL": "postgres://db", "JWT_SECRET": "s", "JWT_EXPIRE": "soon"},
		"negative expiry":  {"DATABASE_URL": "postgres://db", "JWT_SECRET": "s", "JWT_EXPIRE": "-1h"},
		"bad log level":    {"DATABASE_URL": "postgres://db", "JWT_SECRET": "s", "LOG_LEVEL": "loud"},
	}

	for name, environment := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(env.Options{Environment: environment})
			assert.Error(t, err)
		})
	}
}

func Test_LoadConfigReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://file/parcels\nHTTP_PORT=7000\n"), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "6000")
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://file/parcels", cfg.DatabaseURL)
	assert.Equal(t, "6000", cfg.HTTPPort)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func Test_LoadConfigToleratesMissingFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/parcels")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t, "postgres://env/parcels", cfg.DatabaseURL)
}
