package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// AdminAPIKey guards the admin reset endpoint. Empty disables it.
	AdminAPIKey string

	// SeedOnStart controls installing the sample collectibles at boot.
	SeedOnStart bool

	CORSAllowOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "3001"),
		Env:              getEnv("ENV", "development"),
		AdminAPIKey:      getEnv("ADMIN_API_KEY", ""),
		SeedOnStart:      getEnv("SEED_ON_START", "true") != "false",
		CORSAllowOrigins: strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ","),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
