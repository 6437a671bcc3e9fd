package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the immutable process configuration, read once at startup and
// passed into constructors.
type Config struct {
	AppPort      string
	DBDriver     string // "sqlite", "postgres" or "memory"
	DatabaseDSN  string
	JWTSecret    string
	TokenTTL     time.Duration
	RabbitMQURL  string // empty disables catalog events
	SeedProducts bool
}

// Load builds the configuration from environment variables with sensible
// development defaults.
func Load() *Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "grocery.db")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("TOKEN_TTL_HOURS", 168) // 7 days
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED_PRODUCTS", true)
	v.AutomaticEnv()

	return &Config{
		AppPort:      v.GetString("APP_PORT"),
		DBDriver:     v.GetString("DB_DRIVER"),
		DatabaseDSN:  v.GetString("DATABASE_DSN"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		TokenTTL:     time.Duration(v.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
		SeedProducts: v.GetBool("SEED_PRODUCTS"),
	}
}
