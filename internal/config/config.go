package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Addr        string
	DBPath      string
	SecretKey   string
	BaseURL     string
	PhoneRegion string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:      getEnv("APP_ENV", "local"),
		Addr:        getEnv("APP_ADDR", ":8080"),
		DBPath:      getEnv("DB_PATH", "data/zenith.db"),
		SecretKey:   getEnv("SECRET_KEY", "change_me_in_production"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		PhoneRegion: getEnv("PHONE_REGION", "IN"),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    getEnvInt("SMTP_PORT", 587),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		SMTPFrom:    os.Getenv("SMTP_FROM"),
	}

	if cfg.IsProduction() {
		missing := []string{}
		if cfg.SecretKey == "" || cfg.SecretKey == "change_me_in_production" {
			missing = append(missing, "SECRET_KEY")
		}
		if cfg.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if cfg.SMTPFrom == "" {
			missing = append(missing, "SMTP_FROM")
		}
		if len(missing) > 0 {
			return cfg, errors.New("missing env for production: " + strings.Join(missing, ", "))
		}
	}

	return cfg, nil
}

func (cfg Config) IsProduction() bool {
	return strings.EqualFold(cfg.AppEnv, "production")
}

// CookieSecure matches the session cookie contract: Secure outside local
// development.
func (cfg Config) CookieSecure() bool {
	return cfg.IsProduction()
}

func (cfg Config) SMTPConfigured() bool {
	return cfg.SMTPHost != "" && cfg.SMTPFrom != ""
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
