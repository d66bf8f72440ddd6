package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BotToken string `env:"BOT_TOKEN,required"`

	// AppID namespaces all persisted campaign records and uploads.
	AppID string `env:"APP_ID" envDefault:"default-app-id"`

	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID,required"`
	StorageBucket     string `env:"STORAGE_BUCKET,required"`
	CredentialsFile   string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	PostgresDSN string `env:"POSTGRES_DSN,required"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// ConfigScriptURL is the spreadsheet-backed configuration endpoint.
	// Empty means the built-in fallback catalog is used.
	ConfigScriptURL string `env:"CONFIG_SCRIPT_URL"`

	GeocoderBaseURL string `env:"GEOCODER_BASE_URL"`

	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AdminSet converts the admin allowlist into a membership set.
func (c Config) AdminSet() map[int64]struct{} {
	out := make(map[int64]struct{}, len(c.AdminIDs))
	for _, id := range c.AdminIDs {
		out[id] = struct{}{}
	}
	return out
}
