// internal/config/config.go
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DefaultJWTSecret is the development signing secret. The API refuses to
// start with it in production.
const DefaultJWTSecret = "dev-insecure-change-me"

type Config struct {
	Env string `json:"env"`
	Database struct {
		URL  string `json:"url"`
		Path string `json:"path"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port           string        `json:"port"`
		ReadTimeout    time.Duration `json:"read_timeout"`
		WriteTimeout   time.Duration `json:"write_timeout"`
		AllowedOrigins []string      `json:"allowed_origins"`
	} `json:"server"`
	Static struct {
		PublicDir      string `json:"public_dir"`
		SubmissionsDir string `json:"submissions_dir"`
	} `json:"static"`
	Auth struct {
		IPWhitelist []string `json:"ip_whitelist"`
	} `json:"auth"`
	RateLimit struct {
		// Submissions accepted per client IP per SubmissionWindow.
		Submissions      int           `json:"submissions"`
		SubmissionWindow time.Duration `json:"submission_window"`
		// Reviewer API requests per client IP per APIWindow.
		API       int           `json:"api"`
		APIWindow time.Duration `json:"api_window"`
	} `json:"rate_limit"`
	Email EmailConfig `json:"email"`
}

// EmailConfig selects how submitters are told about review decisions. An
// empty Provider disables notifications.
type EmailConfig struct {
	Provider string `json:"provider"`
	From     string `json:"from"`
	FromName string `json:"from_name"`
	Sendgrid SendgridConfig `json:"sendgrid"`
	SMTP     SMTPConfig     `json:"smtp"`
}

type SendgridConfig struct {
	APIKey string `json:"api_key"`
	Host   string `json:"host"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func Load() *Config {
	cfg := &Config{}

	cfg.Env = firstEnv("development", "ENV", "NODE_ENV")

	// Database configuration. Without a URL the store is a local SQLite file.
	cfg.Database.URL = getEnv("DATABASE_URL", "")
	cfg.Database.Path = getEnv("DB_PATH", "data/clubmap.db")
	if cfg.Database.URL == "" && !filepath.IsAbs(cfg.Database.Path) {
		if abs, err := filepath.Abs(cfg.Database.Path); err == nil {
			cfg.Database.Path = abs
		}
	}

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", DefaultJWTSecret)
	cfg.JWT.ExpiryPeriod = getDuration("JWT_EXPIRY", time.Hour*24)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.AllowedOrigins = getList("CORS_ALLOWED_ORIGINS", []string{"https://*", "http://*"})

	// Static mounts
	cfg.Static.PublicDir = getEnv("PUBLIC_DIR", "public")
	cfg.Static.SubmissionsDir = getEnv("SUBMISSIONS_DIR", "data/submissions")

	cfg.Auth.IPWhitelist = getList("ADMIN_IP_WHITELIST", nil)

	cfg.RateLimit.Submissions = getInt("RATE_LIMIT_SUBMISSIONS", 10)
	cfg.RateLimit.SubmissionWindow = getDuration("RATE_LIMIT_SUBMISSION_WINDOW", time.Hour)
	cfg.RateLimit.API = getInt("RATE_LIMIT_API", 100)
	cfg.RateLimit.APIWindow = getDuration("RATE_LIMIT_API_WINDOW", 15*time.Minute)

	// Review notifications
	cfg.Email.Provider = strings.ToLower(getEnv("EMAIL_PROVIDER", ""))
	cfg.Email.From = getEnv("EMAIL_FROM", "")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Club Map")
	cfg.Email.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Email.Sendgrid.Host = getEnv("SENDGRID_HOST", "")
	cfg.Email.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.Email.SMTP.Port = getInt("SMTP_PORT", 587)
	cfg.Email.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.Email.SMTP.Password = getEnv("SMTP_PASSWORD", "")

	return cfg
}

// Dialect reports which store the configuration selects.
func (c *Config) Dialect() Dialect {
	u := strings.ToLower(c.Database.URL)
	if strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://") || strings.Contains(u, "host=") {
		return DialectPostgres
	}
	return DialectSQLite
}

// DSN returns the connection string for the selected dialect.
func (c *Config) DSN() string {
	if c.Dialect() == DialectPostgres {
		return c.Database.URL
	}
	if c.Database.URL != "" {
		return strings.TrimPrefix(c.Database.URL, "sqlite://")
	}
	return c.Database.Path
}

// IsProduction reports whether the deployment environment is production.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Env)
	return env == "production" || env == "prod"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return defaultValue
}

func firstEnv(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := getEnv(key, ""); value != "" {
			return value
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
