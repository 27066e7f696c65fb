// Package supabase provides access to the Supabase project backing the
// wishlist: Auth for token verification and Postgres for storage.
package supabase

import (
	"os"
	"strings"
	"time"
)

// Config holds configuration for the Supabase project.
type Config struct {
	URL            string        // Project URL (e.g., "https://xyz.supabase.co")
	ServiceRoleKey string        // Sent as the apikey header to Supabase Auth
	JWTSecret      string        // HS256 secret for local token verification
	DBURL          string        // Postgres connection string of the project database
	Timeout        time.Duration // HTTP request timeout
}

// LoadConfig loads Supabase configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		URL:            strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		ServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		JWTSecret:      os.Getenv("SUPABASE_JWT_SECRET"),
		DBURL:          os.Getenv("SUPABASE_DB_URL"),
		Timeout:        10 * time.Second,
	}
	if d, err := time.ParseDuration(os.Getenv("UPSTREAM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}
