package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Gateway GatewayConfig
	Logger  LoggerConfig
}

// GatewayConfig holds Vanco gateway configuration
type GatewayConfig struct {
	UserID   string // Web service login
	Password string
	ClientID string // Merchant client id sent with every operation
	TestMode bool   // true routes to the UAT endpoint
	Timeout  int    // Request timeout in seconds (default: 30)
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			UserID:   getEnv("VANCO_USER_ID", ""),
			Password: getEnv("VANCO_PASSWORD", ""),
			ClientID: getEnv("VANCO_CLIENT_ID", ""),
			TestMode: getEnvAsBool("VANCO_TEST_MODE", true),
			Timeout:  getEnvAsInt("VANCO_TIMEOUT", 30),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields
	if cfg.Gateway.UserID == "" {
		return nil, fmt.Errorf("VANCO_USER_ID is required")
	}
	if cfg.Gateway.Password == "" {
		return nil, fmt.Errorf("VANCO_PASSWORD is required")
	}
	if cfg.Gateway.ClientID == "" {
		return nil, fmt.Errorf("VANCO_CLIENT_ID is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
