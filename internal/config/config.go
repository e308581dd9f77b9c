// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is built once at startup and
// passed explicitly to the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Env        string // application environment (development/production)
	Port       string // HTTP port to listen on
	DBHost     string // PostgreSQL host
	DBPort     string // PostgreSQL port
	DBUser     string // PostgreSQL user
	DBPass     string // PostgreSQL password (optional)
	DBName     string // PostgreSQL database name
	JWTSecret  string // secret used to sign access tokens
	BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration from the environment, honoring a .env file when
// present. The process refuses to start without a signing secret or the
// database coordinates: serving requests without them would either break
// every protected endpoint or fail on the first query.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	return Config{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("APP_PORT", "8080"),
		DBHost:     must("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     must("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"),
		DBName:     getEnv("DB_NAME", "postgres"),
		JWTSecret:  must("JWT_SECRET"),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),
	}
}

// must retrieves a required environment variable. If the variable is unset
// or empty, the process exits instead of limping along misconfigured.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
