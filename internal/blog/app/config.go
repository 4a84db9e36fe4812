package app

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TokenSecret string        // Required outside dev: HS256 secret for login tokens
	TokenIssuer string        // Optional: issuer claim for tokens (default: quill)
	TokenTTL    time.Duration // Optional: token lifetime (default: 1h)

	DatabaseFile   string        // Optional: path to SQLite database file (default: ./quill.db)
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	ImageDir       string        // Optional: directory uploaded images are stored in (default: ./images)
	MaxUploadBytes int64         // Optional: maximum size of an image upload request (default: 10 MiB)
	OrphanGrace    time.Duration // Optional: age after which unreferenced images are removed (default: 24h)
	GraphiQL       bool          // Optional: serve GraphiQL at /graphiql (default: true in dev)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the configuration from the environment after loading the
// optional .env file named by QUILL_ENV_FILE. Variables already set in the
// environment win over the file.
func LoadConfig() Config {
	loadEnvFile(getEnvOrDefault("QUILL_ENV_FILE", ".env"))

	env := getEnvOrDefault("ENV", "dev")
	return Config{
		TokenSecret:          os.Getenv("QUILL_TOKEN_SECRET"),
		TokenIssuer:          getEnvOrDefault("QUILL_TOKEN_ISSUER", "quill"),
		TokenTTL:             getEnvDurationOrDefault("QUILL_TOKEN_TTL", time.Hour),
		DatabaseFile:         getEnvOrDefault("QUILL_DATABASE_FILE", "quill.db"),
		PepperFile:           getEnvOrDefault("QUILL_PEPPER_FILE", "pepper"),
		ImageDir:             getEnvOrDefault("QUILL_IMAGE_DIR", "images"),
		MaxUploadBytes:       int64(getEnvIntOrDefault("QUILL_MAX_UPLOAD_BYTES", 10<<20)),
		OrphanGrace:          getEnvDurationOrDefault("QUILL_ORPHAN_IMAGE_GRACE", 24*time.Hour),
		GraphiQL:             getEnvBoolOrDefault("QUILL_GRAPHIQL", env == "dev"),
		Env:                  env,
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// loadEnvFile applies a .env file if one exists. A missing file is not an
// error; a malformed one is ignored too, since the environment still works.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load %s: %v", path, err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
