package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	ListenAddr   string // HTTP listen address
	DatabaseURL  string // Postgres DSN; when empty, SqlitePath is used instead
	SqlitePath   string // sqlite database file for local runs
	AuthUsername string // HTTP Basic auth username
	AuthPassword string // HTTP Basic auth password
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		ListenAddr:   envOrDefault("LISTEN_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SqlitePath:   envOrDefault("SQLITE_PATH", "userposts.db"),
		AuthUsername: envOrDefault("AUTH_USERNAME", "admin"),
		AuthPassword: envOrDefault("AUTH_PASSWORD", "admin"),
	}
}

// BasicAuthUsers returns the credential map consumed by the BasicAuth
// middleware.
func (c *Config) BasicAuthUsers() map[string]string {
	return map[string]string{c.AuthUsername: c.AuthPassword}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
