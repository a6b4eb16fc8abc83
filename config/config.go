package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Logging    LoggingConfig
	Kafka      KafkaConfig
	Pagination PaginationConfig
}

// AppConfig holds application-level settings
type AppConfig struct {
	Env string // "development" enables error detail in 500 responses
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// KafkaConfig holds event producer settings. An empty broker list
// disables event publishing.
type KafkaConfig struct {
	Brokers []string
}

// PaginationConfig holds the defaults applied when paged endpoints
// receive omitted or non-numeric query parameters.
type PaginationConfig struct {
	DefaultPageNumber int
	DefaultPageSize   int
}

// IsDevelopment reports whether the service runs in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Load builds the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "production"),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsSlice("KAFKA_BROKERS"),
		},
		Pagination: PaginationConfig{
			DefaultPageNumber: getEnvAsInt("PAGE_NUMBER_DEFAULT", 1),
			DefaultPageSize:   getEnvAsInt("PAGE_SIZE_DEFAULT", 100),
		},
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an integer environment variable or a default
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice returns a comma-separated environment variable as a
// slice, skipping empty entries
func getEnvAsSlice(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
