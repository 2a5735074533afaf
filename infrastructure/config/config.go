package config

import (
	"fmt"
	"os"
)

// Store driver names accepted in STORE_DRIVER.
const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string

	// Storage backend: "dynamodb" or "memory"
	StoreDriver string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable: getEnv("TABLE_NAME", "todos"),
		StoreDriver:   getEnv("STORE_DRIVER", StoreDriverDynamoDB),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.StoreDriver == StoreDriverDynamoDB && c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
