package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// FTPConfig holds remote document store settings.
// BaseDir is the directory on the FTP server under which one folder per
// employee is created (e.g. "uploads" -> /uploads/<employeeId>/...).
type FTPConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Secure     bool
	BaseDir    string
	TimeoutSec int
}

// UploadConfig holds settings for serving stored document references.
// PublicBaseURL is prefixed to "<employeeId>/<filename>" to build a
// browser-reachable URL for a stored document.
type UploadConfig struct {
	PublicBaseURL string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	FTP      FTPConfig
	Upload   UploadConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		FTP: FTPConfig{
			Host:       getEnv("FTP_HOST", ""),
			Port:       getEnv("FTP_PORT", "21"),
			User:       getEnv("FTP_USER", ""),
			Password:   getEnv("FTP_PASS", ""),
			Secure:     getEnvBool("FTP_SECURE", false),
			BaseDir:    getEnv("FTP_EMP_DIR", "uploads"),
			TimeoutSec: getEnvInt("FTP_TIMEOUT_SEC", 20),
		},
		Upload: UploadConfig{
			PublicBaseURL: getEnv("UPLOAD_PUBLIC_BASE_URL", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
