package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/xablau3666/loja/internal/models"
)

type Config struct {
	Addr     string
	LogLevel string

	// Postgres is used when DB_HOST is set, otherwise the store is a
	// local SQLite file.
	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	SQLITE_PATH string

	SESSION_SECRET string
	// Shared passphrase for admin self-enrollment at registration.
	// Empty disables enrollment: any admin request is silently demoted.
	ADMIN_SECRET string

	// CSRF protection for the form posts. Off by default to keep
	// plain API clients working; turn on when serving browsers.
	CSRF_ENABLED bool

	KAFKA_ADDRESS string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		Addr:           getEnv("ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        getEnv("DB_PORT", "5432"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		SQLITE_PATH:    getEnv("SQLITE_PATH", "loja.db"),
		SESSION_SECRET: os.Getenv("SESSION_SECRET"),
		ADMIN_SECRET:   os.Getenv("ADMIN_SECRET"),
		CSRF_ENABLED:   getEnv("CSRF_ENABLED", "false") == "true",
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
	}

	if config.SESSION_SECRET == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(configuration *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if configuration.DB_HOST != "" {
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			configuration.DB_USER,
			configuration.DB_PASSWORD,
			configuration.DB_HOST,
			configuration.DB_PORT,
			configuration.DB_NAME,
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(configuration.SQLITE_PATH)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
