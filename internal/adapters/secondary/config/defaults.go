package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

// Service defaults matching the upstream chat-completion provider
const (
	defaultBaseURL = "https://api.siliconflow.cn/v1"
	defaultModel   = "deepseek-ai/DeepSeek-V3"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("PROMPTDECK_HOST", "0.0.0.0"),
			Port:            getEnvIntOrDefault("PROMPTDECK_PORT", 8000),
			ReadTimeout:     getEnvIntOrDefault("PROMPTDECK_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("PROMPTDECK_WRITE_TIMEOUT", 120),
			ShutdownTimeout: getEnvIntOrDefault("PROMPTDECK_SHUTDOWN_TIMEOUT", 5),
			CORSOrigins:     getEnvSliceOrDefault("PROMPTDECK_CORS_ORIGINS", []string{"*"}),
		},
		LLM: entities.LLMConfig{
			BaseURL:     getEnvOrDefault("PROMPTDECK_LLM_BASE_URL", defaultBaseURL),
			Model:       getEnvOrDefault("PROMPTDECK_LLM_MODEL", defaultModel),
			APIKey:      getEnvOrDefault("SILICONFLOW_API_KEY", ""),
			Temperature: 0.3,
			Timeout:     getEnvIntOrDefault("PROMPTDECK_LLM_TIMEOUT", 60),
		},
		Generator: entities.GeneratorConfig{
			OutputDir:       getEnvOrDefault("PROMPTDECK_OUTPUT_DIR", "generated"),
			AssetsDir:       getEnvOrDefault("PROMPTDECK_ASSETS_DIR", ""),
			Catalog:         getEnvOrDefault("PROMPTDECK_CATALOG", ""),
			DefaultTemplate: "default",
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("PROMPTDECK_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("PROMPTDECK_LOG_VERBOSE", false),
		},
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvSliceOrDefault returns environment variable as comma-split slice or default
func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
