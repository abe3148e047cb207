package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Sheets  SheetsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated (e.g. http://localhost:3000,https://auction.example.com)
}

// SessionConfig holds session signing and cookie settings.
type SessionConfig struct {
	Secret        string
	TTLDays       int
	SecureCookies bool // Secure attribute on the session cookie; on in production
}

// SheetsConfig holds the service account identity and spreadsheet ID for the
// record store. All three fields are required; there is no file-system
// fallback and no built-in default identity.
type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	SpreadsheetID       string
}

// Load reads configuration from environment, with optional .env file.
// It fails if the session secret or any store credential is missing, so a
// misconfigured process never starts serving.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SEC", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SEC", "30"))

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Session: SessionConfig{
			Secret:        os.Getenv("SESSION_SECRET"),
			TTLDays:       getEnvInt("SESSION_TTL_DAYS", 30),
			SecureCookies: getEnv("APP_ENV", "development") == "production",
		},
		Sheets: SheetsConfig{
			ServiceAccountEmail: strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")),
			PrivateKey:          os.Getenv("GOOGLE_PRIVATE_KEY"),
			SpreadsheetID:       strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID")),
		},
	}

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is empty")
	}
	if cfg.Sheets.ServiceAccountEmail == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL is empty")
	}
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SPREADSHEET_ID is empty")
	}

	key, err := normalizePrivateKey(cfg.Sheets.PrivateKey)
	if err != nil {
		return nil, err
	}
	cfg.Sheets.PrivateKey = key

	return cfg, nil
}

// normalizePrivateKey turns an env-var PEM (with literal \n sequences, as
// most deploy UIs store it) into real PEM and checks the markers so a broken
// key fails at startup instead of on the first append.
func normalizePrivateKey(raw string) (string, error) {
	key := strings.ReplaceAll(raw, `\n`, "\n")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("GOOGLE_PRIVATE_KEY is empty")
	}
	if !strings.HasPrefix(key, "-----BEGIN") {
		return "", fmt.Errorf("GOOGLE_PRIVATE_KEY is not a PEM private key")
	}
	if !strings.HasSuffix(key, "PRIVATE KEY-----") {
		return "", fmt.Errorf("GOOGLE_PRIVATE_KEY is missing its PEM footer")
	}
	return key, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
