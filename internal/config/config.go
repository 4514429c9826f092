package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Chat        ChatConfig
}

// ChatConfig holds upstream model endpoint configuration
type ChatConfig struct {
	UpstreamURL string
	APIKey      string
	Model       string
	Timeout     time.Duration
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CHAT_MODEL", "physical-ai-tutor")
	viper.SetDefault("CHAT_TIMEOUT_SECONDS", 30)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Chat: ChatConfig{
			UpstreamURL: viper.GetString("CHAT_UPSTREAM_URL"),
			APIKey:      viper.GetString("CHAT_API_KEY"),
			Model:       viper.GetString("CHAT_MODEL"),
			Timeout:     time.Duration(viper.GetInt("CHAT_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
