package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv          string `mapstructure:"APP_ENV"`
	Port            string `mapstructure:"PORT"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	ShareHashLength int    `mapstructure:"SHARE_HASH_LENGTH"`
	CORSOrigins     string `mapstructure:"CORS_ORIGINS"` // Comma separated
	ShareBaseURL    string `mapstructure:"SHARE_BASE_URL"`
}

func LoadConfig() (config Config, err error) {
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SHARE_HASH_LENGTH", 10)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	viper.SetDefault("SHARE_BASE_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	// Fail fast at startup on missing secrets rather than at first request.
	if config.JWTSecret == "" {
		return config, errors.New("JWT_SECRET is required")
	}
	if config.DatabaseURL == "" {
		return config, errors.New("DATABASE_URL is required")
	}

	return
}
