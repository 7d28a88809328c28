package config

import (
	"os"
	"strconv"

	"github.com/portfolio/backend/pkg/mailer"
)

// DefaultAdminKey is used when ADMIN_API_KEY is not set.
const DefaultAdminKey = "admin123"

type Config struct {
	Port         int
	MessagesFile string
	AdminKey     string
	AdminKeyMode string
	FrontendURL  string
	Mail         mailer.Config
}

// UsingDefaultAdminKey reports whether ADMIN_API_KEY was left unset.
func (c Config) UsingDefaultAdminKey() bool {
	return c.AdminKey == DefaultAdminKey
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the process environment, applying defaults for unset values.
func Load() Config {
	return Config{
		Port:         intEnv("PORT", 5000),
		MessagesFile: stringEnv("MESSAGES_FILE", "messages.json"),
		AdminKey:     stringEnv("ADMIN_API_KEY", DefaultAdminKey),
		AdminKeyMode: stringEnv("ADMIN_KEY_COMPARE", "exact"),
		FrontendURL:  stringEnv("FRONTEND_URL", "*"),
		Mail: mailer.Config{
			Host:     stringEnv("SMTP_HOST", mailer.DefaultHost),
			Port:     intEnv("SMTP_PORT", mailer.DefaultPort),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("EMAIL_FROM"),
			To:       os.Getenv("EMAIL_TO"),
		},
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
