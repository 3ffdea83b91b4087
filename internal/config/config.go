package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all environment-provided settings.
type Config struct {
	Port      string
	DBPath    string
	UploadDir string
	LogLevel  string

	JWTSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
}

// requiredKeys must be present in the environment; startup fails fast otherwise.
var requiredKeys = []string{"JWT_SECRET", "SMTP_USER", "SMTP_PASS"}

// Load reads configuration from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", "finance.db")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return &Config{
		Port:      v.GetString("PORT"),
		DBPath:    v.GetString("DB_PATH"),
		UploadDir: v.GetString("UPLOAD_DIR"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		JWTSecret: v.GetString("JWT_SECRET"),
		SMTPHost:  v.GetString("SMTP_HOST"),
		SMTPPort:  v.GetInt("SMTP_PORT"),
		SMTPUser:  v.GetString("SMTP_USER"),
		SMTPPass:  v.GetString("SMTP_PASS"),
	}, nil
}
