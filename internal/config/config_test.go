package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"JWT_SECRET": "secret",
	}})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 72*time.Hour, cfg.JWT.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"JWT_SECRET":      "secret",
		"PORT":            "9000",
		"DB_HOST":         "db",
		"REDIS_DB":        "2",
		"REDIS_TLS":       "true",
		"ALLOWED_ORIGINS": "https://wordslide.app,https://www.wordslide.app",
	}})
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Redis.TLS)
	assert.Equal(t, []string{"https://wordslide.app", "https://www.wordslide.app"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.Database.DSN(), "host='db'")
}

func TestParse_MissingSecret(t *testing.T) {
	_, err := Parse(env.Options{Environment: map[string]string{}})
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestParse_InvalidNumber(t *testing.T) {
	_, err := Parse(env.Options{Environment: map[string]string{
		"JWT_SECRET": "secret",
		"REDIS_DB":   "zero",
	}})
	assert.Error(t, err)
}

func TestDSN_QuotesAwkwardValues(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "word slide",
		Password: `it's a p\ss word`,
		Name:     "wordslide",
		SSLMode:  "disable",
	}

	parsed, err := pgconn.ParseConfig(d.DSN())
	require.NoError(t, err)
	assert.Equal(t, "db.internal", parsed.Host)
	assert.Equal(t, uint16(5433), parsed.Port)
	assert.Equal(t, "word slide", parsed.User)
	assert.Equal(t, `it's a p\ss word`, parsed.Password)
	assert.Equal(t, "wordslide", parsed.Database)
}

func TestDSN_EmptyPassword(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: "5432", User: "postgres", Name: "wordslide", SSLMode: "disable"}

	parsed, err := pgconn.ParseConfig(d.DSN())
	require.NoError(t, err)
	assert.Empty(t, parsed.Password)
	assert.Equal(t, "postgres", parsed.User)
}
