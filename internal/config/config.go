// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Data        DataConfig
	LLM         LLMConfig
	I18n        I18nConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string `validate:"required"`
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DataConfig struct {
	CSVPath string `validate:"required"`
}

type LLMConfig struct {
	APIKey      string `validate:"required"`
	Model       string
	Temperature float64
	Timeout     int // in seconds
}

type I18nConfig struct {
	Locale string `validate:"oneof=tr en"`
}

type RateLimitConfig struct {
	GeneralPerSecond int
	ChatPerMinute    int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 300),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Data: DataConfig{
			CSVPath: getEnv("BEAUTYBOT_CSV_PATH", "all_categories_20250207_031918.csv"),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
			Timeout:     getEnvAsInt("GEMINI_TIMEOUT", 120),
		},
		I18n: I18nConfig{
			Locale: getEnv("BEAUTYBOT_LOCALE", "tr"),
		},
		RateLimit: RateLimitConfig{
			GeneralPerSecond: getEnvAsInt("RATE_LIMIT_GENERAL_PER_SECOND", 10),
			ChatPerMinute:    getEnvAsInt("RATE_LIMIT_CHAT_PER_MINUTE", 10),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
