package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says otherwise
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		// A missing .env file is fine; env vars may be set directly
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil
		}
	}

	return nil
}

// EnvironmentVariable holds the configuration surface of the app
type EnvironmentVariable struct {
	GO_ENV string
	PORT   int

	// SQLite store file, rebuilt on every start
	DB_PATH string

	// Optional PostgreSQL connection; used instead of SQLite when DB_HOST is set
	DB_HOST      string
	DB_PORT      string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_SSL_MODE  string

	// Session signing secret. The default is a demo placeholder.
	SESSION_SECRET string

	// Redis for login lockouts (optional)
	REDIS_URL string
}

// Get reads the environment into a config struct with defaults applied
func Get() (*EnvironmentVariable, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 5000
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "skillconnect.db"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "your-secret-key-change-in-production"
	}

	envVariables := &EnvironmentVariable{
		GO_ENV:         os.Getenv("GO_ENV"),
		PORT:           port,
		DB_PATH:        dbPath,
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        dbPort,
		DB_USER_NAME:   os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		DB_SSL_MODE:    os.Getenv("DB_SSL_MODE"),
		SESSION_SECRET: sessionSecret,
		REDIS_URL:      os.Getenv("REDIS_URL"),
	}

	return envVariables, nil
}
