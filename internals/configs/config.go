package configs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	AppEnv      string
	AppPort     string
	AppTimezone string
	CORSOrigins string

	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	JWTSecret string

	GoogleBooksAPIKey  string
	GoogleBooksBaseURL string
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		log.Println("[INFO] Running in production, using ENV from the system")
	} else if err := godotenv.Load(); err != nil {
		log.Println("[WARN] .env file not found, using ENV from the system")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	AppEnv = GetEnv("APP_ENV", "dev")
	AppPort = GetEnv("PORT", "3000")
	AppTimezone = GetEnv("APP_TIMEZONE", "UTC")
	CORSOrigins = GetEnv("CORS_ORIGINS", "http://localhost:5173")

	DBDriver = strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres))
	DatabaseURL = GetEnv("DATABASE_URL")
	SQLitePath = GetEnv("SQLITE_PATH", "library.db")

	JWTSecret = GetEnv("JWT_SECRET")

	GoogleBooksAPIKey = GetEnv("GOOGLE_BOOKS_API_KEY")
	GoogleBooksBaseURL = GetEnv("GOOGLE_BOOKS_BASE_URL", defaultGoogleBooksBaseURL)

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set, admin routes are disabled")
	}
	if GoogleBooksAPIKey == "" {
		log.Println("[WARN] GOOGLE_BOOKS_API_KEY is not set, searching without a key")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// PostgresDSN returns DATABASE_URL when set, otherwise builds the DSN from DB_* parts.
func PostgresDSN() string {
	if DatabaseURL != "" {
		return DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=librarymanager&options=-c statement_timeout=3000",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "library"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}
