package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dangerclosesec/clubmap/internal/config"
	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ENV", "NODE_ENV", "DATABASE_URL", "DB_PATH", "JWT_SECRET", "JWT_EXPIRY",
		"SERVER_PORT", "CORS_ALLOWED_ORIGINS", "PUBLIC_DIR", "SUBMISSIONS_DIR", "ADMIN_IP_WHITELIST",
		"EMAIL_PROVIDER", "EMAIL_FROM", "EMAIL_FROM_NAME", "SENDGRID_API_KEY", "SENDGRID_HOST",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD",
		"RATE_LIMIT_SUBMISSIONS", "RATE_LIMIT_SUBMISSION_WINDOW", "RATE_LIMIT_API", "RATE_LIMIT_API_WINDOW",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "dev-insecure-change-me", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.Server.AllowedOrigins)
	assert.Nil(t, cfg.Auth.IPWhitelist)
	assert.Empty(t, cfg.Email.Provider)
	assert.Equal(t, 587, cfg.Email.SMTP.Port)
	assert.Equal(t, 10, cfg.RateLimit.Submissions)
	assert.Equal(t, time.Hour, cfg.RateLimit.SubmissionWindow)
	assert.Equal(t, 100, cfg.RateLimit.API)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.APIWindow)

	assert.Equal(t, config.DialectSQLite, cfg.Dialect())
	assert.True(t, filepath.IsAbs(cfg.Database.Path))
	assert.Equal(t, "clubmap.db", filepath.Base(cfg.DSN()))
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/clubs?sslmode=disable")
	t.Setenv("JWT_SECRET", "  s3cret ")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("ADMIN_IP_WHITELIST", "10.0.0.1, 10.0.0.2,,")
	t.Setenv("EMAIL_PROVIDER", "SMTP")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RATE_LIMIT_SUBMISSIONS", "3")
	t.Setenv("RATE_LIMIT_SUBMISSION_WINDOW", "10m")
	t.Setenv("RATE_LIMIT_API", "0")

	cfg := config.Load()
	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Auth.IPWhitelist)
	assert.Equal(t, config.DialectPostgres, cfg.Dialect())
	assert.Equal(t, "postgres://u:p@db:5432/clubs?sslmode=disable", cfg.DSN())
	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, "mail.example.com", cfg.Email.SMTP.Host)
	assert.Equal(t, 2525, cfg.Email.SMTP.Port)
	assert.Equal(t, 3, cfg.RateLimit.Submissions)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.SubmissionWindow)
	assert.Equal(t, 100, cfg.RateLimit.API, "non-positive limits fall back to the default")
}

func TestEnvTakesPrecedenceOverNodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "staging")
	t.Setenv("NODE_ENV", "production")

	assert.Equal(t, "staging", config.Load().Env)
}

func TestSQLiteURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "sqlite:///var/lib/clubmap.db")

	cfg := config.Load()
	assert.Equal(t, config.DialectSQLite, cfg.Dialect())
	assert.Equal(t, "/var/lib/clubmap.db", cfg.DSN())
}
