package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration values

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The upstream API base URL is resolved exactly
// once here; nothing mutates it at runtime.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	APIBaseURL    string        // base URL of the upstream tour-booking REST API
	APITimeout    time.Duration // per-request timeout for upstream calls
	SessionSecret string        // secret used to sign the session cookie
	SessionTTL    time.Duration // lifetime of a server-side session record
	PageLimit     int           // default rows per page on list views
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file is loaded first when one exists so local runs do not
// need exported variables.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          must("APP_PORT"),
		APIBaseURL:    must("API_BASE_URL"),
		APITimeout:    envDur("API_TIMEOUT", 15*time.Second),
		SessionSecret: must("SESSION_SECRET"),
		SessionTTL:    envDur("SESSION_TTL", 72*time.Hour),
		PageLimit:     envInt("PAGE_LIMIT", 5),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or a default when it is unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
