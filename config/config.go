package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	PORT         string
	DATABASE_URL string
	DB_NAME      string

	// Policy values, overridable via env. DefaultListLimit caps list
	// responses when the caller gives no limit; DiagCollectionLimit caps
	// the collection listing on the diagnostic endpoint.
	DefaultListLimit    int
	DiagCollectionLimit int
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DATABASE_URL = getEnv("DATABASE_URL", "")
	DB_NAME = getEnv("DB_NAME", "portfolio")

	DefaultListLimit = getEnvInt("LIST_LIMIT", 100)
	DiagCollectionLimit = getEnvInt("DIAG_COLLECTION_LIMIT", 10)

	if DATABASE_URL == "" {
		// The process still serves; /test reports the missing URL.
		log.Println("⚠️ DATABASE_URL not set. Store endpoints will report unavailable.")
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, exists := os.LookupEnv(key)
	if !exists || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Ignoring invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
