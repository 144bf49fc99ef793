package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	AWS    AWSConfig
	QR     QRConfig
	Event  EventConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string
	// BaseURL is the externally reachable address used to build the scan
	// URLs embedded in QR codes.
	BaseURL string
}

// MongoConfig holds MongoDB connection settings. An empty URI switches the
// service to the in-memory store (no-database mode).
type MongoConfig struct {
	URI      string
	Database string
}

// AuthConfig holds the scanner gate settings. With neither password nor
// hash set, the scan endpoints run open.
type AuthConfig struct {
	ScannerPassword     string
	ScannerPasswordHash string // bcrypt; takes precedence over the plaintext
	JWTSecret           string
	JWTExpireHours      int
}

// AWSConfig holds AWS credentials and the QR bucket.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// QRConfig selects where generated QR images live: "s3", "local", or
// "inline" (data URIs, nothing persisted).
type QRConfig struct {
	Storage  string
	LocalDir string
	Size     int
}

// EventConfig restricts scanning to a single event day when Date is set
// (YYYY-MM-DD, compared at the given UTC offset).
type EventConfig struct {
	Date            string
	TZOffsetMinutes int
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "3000"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 30),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DB", "checkin"),
		},
		Auth: AuthConfig{
			ScannerPassword:     getEnv("SCANNER_PASSWORD", ""),
			ScannerPasswordHash: getEnv("SCANNER_PASSWORD_HASH", ""),
			JWTSecret:           getEnv("JWT_SECRET", "change-me-in-production"),
			JWTExpireHours:      getEnvInt("JWT_EXPIRE_HOURS", 12),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("AWS_BUCKET_NAME", ""),
		},
		QR: QRConfig{
			Storage:  getEnv("QR_STORAGE", "inline"),
			LocalDir: getEnv("QR_LOCAL_DIR", "qr-images"),
			Size:     getEnvInt("QR_SIZE", 256),
		},
		Event: EventConfig{
			Date:            getEnv("EVENT_DATE", ""),
			TZOffsetMinutes: getEnvInt("EVENT_TZ_OFFSET_MINUTES", 330), // IST
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
