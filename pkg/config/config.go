package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Quota   QuotaConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Environment  string
	ServiceName  string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  string // Comma-separated list of allowed origins
}

// StorageConfig holds the flat-file storage locations
type StorageConfig struct {
	DataPath string
	SeedPath string
}

// QuotaConfig holds the maintenance quota tuning
type QuotaConfig struct {
	MaintenancePercent int
	MinMaintenance     int
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "4000"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
			CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		Storage: StorageConfig{
			DataPath: getEnv("DATA_PATH", "data/vehicles.json"),
			SeedPath: getEnv("SEED_PATH", "data/vehicles.seed.json"),
		},
		Quota: QuotaConfig{
			MaintenancePercent: getEnvAsInt("MAINTENANCE_PERCENT", 5),
			MinMaintenance:     getEnvAsInt("MIN_MAINTENANCE", 0),
		},
	}

	if cfg.Quota.MaintenancePercent < 0 || cfg.Quota.MaintenancePercent > 100 {
		return nil, fmt.Errorf("invalid MAINTENANCE_PERCENT value: %d", cfg.Quota.MaintenancePercent)
	}
	if cfg.Quota.MinMaintenance < 0 {
		return nil, fmt.Errorf("invalid MIN_MAINTENANCE value: %d", cfg.Quota.MinMaintenance)
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
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
