package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The site itself owns no domain data: every
// collection lives behind the studio backend reachable at APIBaseURL, so
// the configuration surface is the HTTP listener, the backend address and
// the session-cookie signing material.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	APIBaseURL    string        // base URL of the studio backend (no trailing slash)
	APITimeout    time.Duration // per-request timeout for backend calls
	SessionSecret string        // secret used to sign session cookies
	SessionTTLMin int           // session lifetime in minutes
	CSRFKey       string        // 32-byte key for CSRF token generation
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		APIBaseURL:    must("API_BASE_URL"),
		APITimeout:    time.Duration(intDefault("API_TIMEOUT_SEC", 15)) * time.Second,
		SessionSecret: must("SESSION_SECRET"),
		SessionTTLMin: mustInt("SESSION_TTL_MIN"),
		CSRFKey:       must("CSRF_KEY"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// intDefault reads an optional integer variable, falling back to def when
// the variable is unset or malformed.
func intDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
