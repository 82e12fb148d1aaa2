package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend identifiers accepted in DB_CLIENT.
const (
	ClientSurreal = "surreal"
	ClientSQL     = "sql"
	ClientNone    = "none"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	// Client selects the storage provider: "surreal", "sql", or "none".
	Client string

	// Relational backend.
	Connection string
	NotesTable string

	// Document backend.
	SurrealURL       string
	SurrealNamespace string
	SurrealDatabase  string
	SurrealUser      string
	SurrealPass      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			// "none" keeps the process startable without a database.
			Client:           strings.ToLower(getEnv("DB_CLIENT", ClientNone)),
			Connection:       getEnv("DB_CONNECTION_STRING", ""),
			NotesTable:       getEnv("NOTES_TABLE", "notes"),
			SurrealURL:       getEnv("SURREAL_URL", ""),
			SurrealNamespace: getEnv("SURREAL_NAMESPACE", "notes"),
			SurrealDatabase:  getEnv("SURREAL_DATABASE", "notes"),
			SurrealUser:      getEnv("SURREAL_USER", ""),
			SurrealPass:      getEnv("SURREAL_PASS", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
