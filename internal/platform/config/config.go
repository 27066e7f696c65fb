// Package config loads the server settings from environment variables.
// Settings owned by a single adapter (Finnhub, Yahoo, Supabase) are loaded
// by that adapter's own LoadConfig.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnv            = "development"
	defaultPort           = 3000
	defaultLogLevel       = "info"
	defaultRequestTimeout = 15 * time.Second
	defaultAuthVerifier   = AuthVerifierSupabase
)

// Identity verifier implementations selectable with AUTH_VERIFIER.
const (
	AuthVerifierSupabase = "supabase" // remote check against Supabase Auth
	AuthVerifierJWT      = "jwt"      // local HS256 check with SUPABASE_JWT_SECRET
)

// Config keeps the runtime configuration for the server.
type Config struct {
	Env            string
	Port           int
	LogLevel       string
	AllowedOrigins []string
	RequestTimeout time.Duration
	AuthVerifier   string
	LogoHosts      []string
	RunMigrations  bool
}

// Addr renders the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load builds Config from environment variables.
func Load() (*Config, error) {
	port, err := getInt("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	timeout, err := getDuration("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}
	migrate, err := getBool("RUN_MIGRATIONS", false)
	if err != nil {
		return nil, err
	}

	verifier := strings.ToLower(getString("AUTH_VERIFIER", defaultAuthVerifier))
	if verifier != AuthVerifierSupabase && verifier != AuthVerifierJWT {
		return nil, fmt.Errorf("AUTH_VERIFIER must be %q or %q, got %q", AuthVerifierSupabase, AuthVerifierJWT, verifier)
	}

	return &Config{
		Env:            getString("APP_ENV", defaultEnv),
		Port:           port,
		LogLevel:       getString("LOG_LEVEL", defaultLogLevel),
		AllowedOrigins: getList("CORS_ALLOWED_ORIGINS"),
		RequestTimeout: timeout,
		AuthVerifier:   verifier,
		LogoHosts:      getList("LOGO_ALLOWED_HOSTS"),
		RunMigrations:  migrate,
	}, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to duration: %w", key, value, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return parsed, nil
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("convert %s value %q to bool: %w", key, value, err)
	}
	return parsed, nil
}

// getList splits a comma-separated variable, dropping empty items.
func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
